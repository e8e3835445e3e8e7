package gateway

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/features"
)

// Factory builds a bank's auto-payment Manager.
type Factory func(logger *zap.Logger) (autopay.Manager, error)

// Registry maps banks to the implementations compiled into the binary. A bank
// missing from the registry has no auto payment.
type Registry map[features.Bank]Factory

// Gateway resolves the auto-payment Manager for a fixed bank.
type Gateway struct {
	bank     features.Bank
	registry Registry
	logger   *zap.Logger

	once    sync.Once
	manager autopay.Manager
}

// New creates a Gateway. The registry is copied; later changes to it are ignored.
func New(bank features.Bank, registry Registry, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := make(Registry, len(registry))
	for b, f := range registry {
		reg[b] = f
	}
	return &Gateway{
		bank:     bank,
		registry: reg,
		logger:   logger.Named("payment_gateway"),
	}
}

// Bank returns the bank the Gateway resolves for.
func (g *Gateway) Bank() features.Bank {
	return g.bank
}

// Available reports whether the bank offers auto payment at all.
func (g *Gateway) Available() bool {
	available := g.bank == features.BankA || g.bank == features.BankB
	g.logger.Info("auto payment availability",
		zap.Bool("available", available),
		zap.Stringer("bank", g.bank),
	)
	return available
}

// Resolve returns the bank's Manager, building it on first use. The second
// return value is false when the bank has no implementation or it failed to
// load; in that case the outcome is also cached.
func (g *Gateway) Resolve() (autopay.Manager, bool) {
	g.once.Do(func() {
		g.manager = g.build()
	})
	return g.manager, g.manager != nil
}

func (g *Gateway) build() (manager autopay.Manager) {
	if g.bank != features.BankA && g.bank != features.BankB {
		g.logger.Info("auto payment not offered", zap.Stringer("bank", g.bank))
		return nil
	}

	factory, ok := g.registry[g.bank]
	if !ok {
		g.logger.Warn("auto payment implementation not found",
			zap.Stringer("bank", g.bank),
			zap.Error(ErrNoImplementation),
		)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("auto payment factory panicked",
				zap.Stringer("bank", g.bank),
				zap.Error(fmt.Errorf("%v", r)),
			)
			manager = nil
		}
	}()

	g.logger.Info("loading auto payment implementation", zap.Stringer("bank", g.bank))

	m, err := factory(g.logger)
	if err == nil && m == nil {
		err = ErrNilManager
	}
	if err != nil {
		g.logger.Error("error creating auto payment manager",
			zap.Stringer("bank", g.bank),
			zap.Error(err),
		)
		return nil
	}

	g.logger.Info("auto payment manager created",
		zap.Stringer("bank", g.bank),
		zap.String("service", m.ServiceName()),
	)
	return m
}

// Description is the marketing blurb for the bank's auto-payment offer.
func (g *Gateway) Description() string {
	switch g.bank {
	case features.BankA:
		return "Bank A AutoPay - Automated recurring payments with instant transfers"
	case features.BankB:
		return "BankB SmartPay - Intelligent scheduling with cashback rewards"
	case features.BankC:
		return "Auto Payment feature not available for Bank C"
	default:
		return "Feature not available"
	}
}

// SupportedFrequencies lists the payment frequencies auto payment accepts.
func (g *Gateway) SupportedFrequencies() []autopay.Frequency {
	return autopay.Frequencies()
}
