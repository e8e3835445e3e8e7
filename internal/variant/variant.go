// Package variant assembles the auto-payment registry for the bank flavour
// selected by build tags:
//
//	-tags banka   Bank A implementation only
//	-tags bankb   Bank B implementation only
//	-tags bankc   no implementation
//
// Without a bank tag both implementations are compiled, which is convenient
// for development builds that switch BANK_CODE at startup. A bank whose file
// is excluded by the tags is not linked into the binary at all.
package variant

import (
	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/gateway"
)

type registration func(reg gateway.Registry, opts []autopay.Option)

// registrations is populated by the init functions of the tag-selected files.
var registrations []registration

// Registry returns the implementations compiled into this binary. opts are
// passed to every implementation it builds.
func Registry(opts ...autopay.Option) gateway.Registry {
	reg := gateway.Registry{}
	for _, register := range registrations {
		register(reg, opts)
	}
	return reg
}
