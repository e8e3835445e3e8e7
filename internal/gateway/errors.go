package gateway

import "errors"

var (
	// ErrNoImplementation is logged when the registry has no factory for the bank.
	ErrNoImplementation = errors.New("no auto payment implementation compiled for bank")
	// ErrNilManager is logged when a factory returns neither a manager nor an error.
	ErrNilManager = errors.New("auto payment factory returned nil manager")
)
