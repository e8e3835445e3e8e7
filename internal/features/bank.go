package features

import "strings"

// Bank identifies the bank flavour a binary was built for.
type Bank string

const (
	BankA       Bank = "A"
	BankB       Bank = "B"
	BankC       Bank = "C"
	BankUnknown Bank = ""
)

// ParseBank maps a bank code to a Bank. Codes outside the known set yield BankUnknown.
func ParseBank(code string) Bank {
	switch Bank(strings.ToUpper(strings.TrimSpace(code))) {
	case BankA:
		return BankA
	case BankB:
		return BankB
	case BankC:
		return BankC
	default:
		return BankUnknown
	}
}

// Name returns the display name of the bank.
func (b Bank) Name() string {
	switch b {
	case BankA:
		return "Bank A"
	case BankB:
		return "Bank B"
	case BankC:
		return "Bank C"
	default:
		return "Unknown Bank"
	}
}

func (b Bank) String() string {
	if b == BankUnknown {
		return "unknown"
	}
	return string(b)
}

// Environment is the deployment stage derived from the base URL.
type Environment string

const (
	EnvDev     Environment = "dev"
	EnvQA      Environment = "qa"
	EnvStaging Environment = "staging"
	EnvPreprod Environment = "preprod"
	EnvProd    Environment = "prod"
)

// environmentMarkers is checked in order; the first substring found wins.
var environmentMarkers = []struct {
	marker string
	env    Environment
}{
	{"dev", EnvDev},
	{"qa", EnvQA},
	{"stg", EnvStaging},
	{"pp", EnvPreprod},
}

// EnvironmentFromURL derives the environment from a base URL.
// A URL carrying several markers (say "stg" and "pp") resolves to whichever
// is checked first.
func EnvironmentFromURL(baseURL string) Environment {
	for _, m := range environmentMarkers {
		if strings.Contains(baseURL, m.marker) {
			return m.env
		}
	}
	return EnvProd
}
