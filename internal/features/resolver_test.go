package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverFor(bank string) Resolver {
	return New(Identity{BankCode: bank, BaseURL: "https://dev.api.bank.com", Version: "1.0"})
}

func TestFeatureTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bank    string
		savings bool
		current bool
		loans   bool
		credit  bool
	}{
		{bank: "A", savings: true, loans: true},
		{bank: "B", savings: true, current: true},
		{bank: "C", current: true, credit: true},
		{bank: "Z"},
	}

	for _, tc := range tests {
		t.Run(tc.bank, func(t *testing.T) {
			r := resolverFor(tc.bank)
			assert.Equal(t, tc.savings, r.SavingsAccountEnabled(), "savings")
			assert.Equal(t, tc.current, r.CurrentAccountEnabled(), "current")
			assert.Equal(t, tc.loans, r.LoansEnabled(), "loans")
			assert.Equal(t, tc.credit, r.CreditCardEnabled(), "credit card")
			assert.True(t, r.UPIEnabled(), "upi")
		})
	}
}

func TestEnabledFeaturesPreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{SavingsAccount, Loans, UPI}, resolverFor("A").EnabledFeatures())
	require.Equal(t, []string{SavingsAccount, CurrentAccount, UPI}, resolverFor("B").EnabledFeatures())
	require.Equal(t, []string{CurrentAccount, CreditCard, UPI}, resolverFor("C").EnabledFeatures())
	require.Equal(t, []string{UPI}, resolverFor("").EnabledFeatures())
}

func TestEnvironmentFromURL(t *testing.T) {
	t.Parallel()

	tests := map[string]Environment{
		"https://dev.api.bank.com": EnvDev,
		"https://qa.api.bank.com":  EnvQA,
		"https://stg.api.bank.com": EnvStaging,
		"https://pp.api.bank.com":  EnvPreprod,
		"https://api.bank.com":     EnvProd,
		"":                         EnvProd,
		// first marker checked wins
		"https://stg-pp.api.bank.com": EnvStaging,
		"https://qa.dev.bank.com":     EnvDev,
	}
	for url, want := range tests {
		assert.Equal(t, want, EnvironmentFromURL(url), url)
	}
}

func TestParseBank(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BankA, ParseBank("A"))
	assert.Equal(t, BankB, ParseBank(" b "))
	assert.Equal(t, BankC, ParseBank("c"))
	assert.Equal(t, BankUnknown, ParseBank("D"))
	assert.Equal(t, BankUnknown, ParseBank(""))
	assert.Equal(t, "Unknown Bank", BankUnknown.Name())
	assert.Equal(t, "Bank B", BankB.Name())
}

func TestAppInfo(t *testing.T) {
	t.Parallel()

	r := New(Identity{
		BankCode:         "B",
		BaseURL:          "https://stg.api.bank.com",
		Version:          "1.0-stg",
		LoggingEnabled:   true,
		AnalyticsEnabled: true,
	})

	info := r.AppInfo()
	for _, want := range []string{
		"Bank: Bank B",
		"Environment: staging",
		"Base URL: https://stg.api.bank.com",
		"Version: 1.0-stg",
		"Logging: true",
		"Analytics: true",
	} {
		assert.True(t, strings.Contains(info, want), "missing %q in %q", want, info)
	}
}

func TestFromBuildUsesDefaults(t *testing.T) {
	r := FromBuild()
	require.Equal(t, BankA, r.BankCode())
	require.Equal(t, "dev", r.EnvironmentName())
	require.True(t, r.LoggingEnabled())
	require.False(t, r.AnalyticsEnabled())
}
