package features

import (
	"fmt"
	"strings"

	"github.com/rohinee/banksuite/internal/buildinfo"
)

// Feature display names, in declaration order.
const (
	SavingsAccount = "Savings Account"
	CurrentAccount = "Current Account"
	Loans          = "Loans"
	CreditCard     = "Credit Card"
	UPI            = "UPI"
)

// Identity is the set of build-time constants the Resolver reads.
type Identity struct {
	BankCode         string
	BaseURL          string
	Version          string
	LoggingEnabled   bool
	AnalyticsEnabled bool
}

// Resolver answers feature queries for a fixed identity.
type Resolver struct {
	id   Identity
	bank Bank
}

// New creates a Resolver for the given identity.
func New(id Identity) Resolver {
	return Resolver{id: id, bank: ParseBank(id.BankCode)}
}

// FromBuild creates a Resolver from the linker-substituted build constants.
func FromBuild() Resolver {
	return New(BuildIdentity())
}

// BuildIdentity returns the identity baked into the binary.
func BuildIdentity() Identity {
	return Identity{
		BankCode:         buildinfo.BankCode,
		BaseURL:          buildinfo.BaseURL,
		Version:          buildinfo.Version,
		LoggingEnabled:   buildinfo.LogsEnabled(),
		AnalyticsEnabled: buildinfo.AnalyticsEnabled(),
	}
}

func (r Resolver) BankCode() Bank { return r.bank }

func (r Resolver) BankName() string { return r.bank.Name() }

func (r Resolver) BaseURL() string { return r.id.BaseURL }

func (r Resolver) Version() string { return r.id.Version }

func (r Resolver) Environment() Environment { return EnvironmentFromURL(r.id.BaseURL) }

// EnvironmentName returns the environment as a plain string.
func (r Resolver) EnvironmentName() string { return string(r.Environment()) }

// SavingsAccountEnabled is true for banks A and B.
func (r Resolver) SavingsAccountEnabled() bool {
	return r.bank == BankA || r.bank == BankB
}

// CurrentAccountEnabled is true for banks B and C.
func (r Resolver) CurrentAccountEnabled() bool {
	return r.bank == BankB || r.bank == BankC
}

// LoansEnabled is true for bank A only.
func (r Resolver) LoansEnabled() bool {
	return r.bank == BankA
}

// CreditCardEnabled is true for bank C only.
func (r Resolver) CreditCardEnabled() bool {
	return r.bank == BankC
}

// UPIEnabled is true for every bank.
func (r Resolver) UPIEnabled() bool {
	return true
}

func (r Resolver) LoggingEnabled() bool { return r.id.LoggingEnabled }

func (r Resolver) AnalyticsEnabled() bool { return r.id.AnalyticsEnabled }

// EnabledFeatures lists the enabled features in declaration order.
func (r Resolver) EnabledFeatures() []string {
	table := []struct {
		name    string
		enabled func() bool
	}{
		{SavingsAccount, r.SavingsAccountEnabled},
		{CurrentAccount, r.CurrentAccountEnabled},
		{Loans, r.LoansEnabled},
		{CreditCard, r.CreditCardEnabled},
		{UPI, r.UPIEnabled},
	}

	out := make([]string, 0, len(table))
	for _, f := range table {
		if f.enabled() {
			out = append(out, f.name)
		}
	}
	return out
}

// AppInfo renders a human-readable summary of the build identity.
func (r Resolver) AppInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bank: %s\n", r.BankName())
	fmt.Fprintf(&b, "Environment: %s\n", r.EnvironmentName())
	fmt.Fprintf(&b, "Base URL: %s\n", r.id.BaseURL)
	fmt.Fprintf(&b, "Version: %s\n", r.id.Version)
	fmt.Fprintf(&b, "Logging: %t\n", r.LoggingEnabled())
	fmt.Fprintf(&b, "Analytics: %t", r.AnalyticsEnabled())
	return b.String()
}
