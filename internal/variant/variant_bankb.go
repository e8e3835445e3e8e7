//go:build bankb || !(banka || bankc)

package variant

import (
	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/autopay/bankb"
	"github.com/rohinee/banksuite/internal/features"
	"github.com/rohinee/banksuite/internal/gateway"
)

func init() {
	registrations = append(registrations, func(reg gateway.Registry, opts []autopay.Option) {
		reg[features.BankB] = func(logger *zap.Logger) (autopay.Manager, error) {
			return bankb.New(logger, opts...), nil
		}
	})
}
