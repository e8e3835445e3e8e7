// Package buildinfo holds the identity constants baked into a binary at link
// time. Each environment and bank flavour sets them through -ldflags, e.g.
//
//	go build -tags banka -ldflags "-X github.com/rohinee/banksuite/internal/buildinfo.BankCode=A \
//	    -X github.com/rohinee/banksuite/internal/buildinfo.BaseURL=https://stg.api.bank.com \
//	    -X github.com/rohinee/banksuite/internal/buildinfo.EnableAnalytics=true" ./cmd/banksuite
package buildinfo

import "strconv"

// Linker-substituted values. Only string variables can be set with -X, so the
// boolean flags are parsed by the accessors below.
var (
	BankCode        = "A"
	BaseURL         = "https://dev.api.bank.com"
	EnableLogs      = "true"
	EnableAnalytics = "false"
	Version         = "1.0"
)

// LogsEnabled reports the build-time logging flag. Unparseable values count as false.
func LogsEnabled() bool {
	return parseBool(EnableLogs)
}

// AnalyticsEnabled reports the build-time analytics flag.
func AnalyticsEnabled() bool {
	return parseBool(EnableAnalytics)
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
