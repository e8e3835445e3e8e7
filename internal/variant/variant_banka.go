//go:build banka || !(bankb || bankc)

package variant

import (
	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/autopay"
	"github.com/rohinee/banksuite/internal/autopay/banka"
	"github.com/rohinee/banksuite/internal/features"
	"github.com/rohinee/banksuite/internal/gateway"
)

func init() {
	registrations = append(registrations, func(reg gateway.Registry, opts []autopay.Option) {
		reg[features.BankA] = func(logger *zap.Logger) (autopay.Manager, error) {
			return banka.New(logger, opts...), nil
		}
	})
}
