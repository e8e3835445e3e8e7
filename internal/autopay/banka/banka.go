// Package banka is Bank A's auto-payment implementation. It is compiled into
// bank A builds only.
package banka

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rohinee/banksuite/internal/autopay"
)

const (
	enableLatency   = 500 * time.Millisecond
	disableLatency  = 500 * time.Millisecond
	scheduleLatency = 200 * time.Millisecond
	updateLatency   = 300 * time.Millisecond
)

var (
	fee       = decimal.RequireFromString("0.50")
	maxAmount = decimal.NewFromInt(50_000)

	nextPaymentDate = time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)
)

// Manager implements autopay.Manager for Bank A.
type Manager struct {
	opts   autopay.Options
	logger *zap.Logger
}

var _ autopay.Manager = (*Manager)(nil)

// New creates Bank A's Manager.
func New(logger *zap.Logger, opts ...autopay.Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		opts:   autopay.NewOptions(opts...),
		logger: logger.Named("banka_autopay"),
	}
}

func (m *Manager) ServiceName() string { return "Bank A AutoPay" }

func (m *Manager) Fee() decimal.Decimal { return fee }

func (m *Manager) MaxAmount() decimal.Decimal { return maxAmount }

func (m *Manager) Enable(ctx context.Context, accountID string) (autopay.Result, error) {
	m.logger.Info("enabling auto payment", zap.String("account_id", accountID))

	if err := m.opts.Sleep(ctx, enableLatency); err != nil {
		return autopay.Result{}, err
	}

	txID := m.opts.TransactionID("BANKA")
	m.logger.Info("auto payment enabled", zap.String("account_id", accountID), zap.String("transaction_id", txID))

	return autopay.Succeeded(
		fmt.Sprintf("Auto payment enabled successfully for account %s", accountID),
		txID,
	), nil
}

func (m *Manager) Disable(ctx context.Context, accountID string) (autopay.Result, error) {
	m.logger.Info("disabling auto payment", zap.String("account_id", accountID))

	if err := m.opts.Sleep(ctx, disableLatency); err != nil {
		return autopay.Result{}, err
	}

	m.logger.Info("auto payment disabled", zap.String("account_id", accountID))

	return autopay.Succeeded(
		fmt.Sprintf("Auto payment disabled for account %s", accountID),
		m.opts.TransactionID("BANKA-CANCEL"),
	), nil
}

func (m *Manager) UpdateAmount(ctx context.Context, accountID string, amount decimal.Decimal) (autopay.Result, error) {
	m.logger.Info("updating auto payment amount",
		zap.String("account_id", accountID),
		zap.Stringer("amount", amount),
	)

	if !amount.IsPositive() {
		return autopay.Failed("Amount must be greater than 0"), nil
	}
	if amount.GreaterThan(maxAmount) {
		return autopay.Failed(fmt.Sprintf("Amount exceeds maximum limit of $%s", maxAmount.StringFixed(2))), nil
	}

	if err := m.opts.Sleep(ctx, updateLatency); err != nil {
		return autopay.Result{}, err
	}

	m.logger.Info("auto payment amount updated", zap.String("account_id", accountID))

	return autopay.Succeeded(
		fmt.Sprintf("Auto payment amount updated to $%s for account %s", amount.StringFixed(2), accountID),
		m.opts.TransactionID("BANKA-UPDATE"),
	), nil
}

func (m *Manager) Schedule(ctx context.Context, accountID string) iter.Seq2[autopay.Schedule, error] {
	m.logger.Info("fetching auto payment schedule", zap.String("account_id", accountID))

	return func(yield func(autopay.Schedule, error) bool) {
		if err := m.opts.Sleep(ctx, scheduleLatency); err != nil {
			yield(autopay.Schedule{}, err)
			return
		}

		if !yield(autopay.Schedule{
			ScheduleID:      "SCH-" + accountID,
			Amount:          decimal.NewFromInt(1500),
			Frequency:       autopay.Monthly,
			NextPaymentDate: nextPaymentDate,
			AccountID:       accountID,
			BeneficiaryName: "Electric Company",
		}, nil) {
			return
		}

		m.logger.Info("schedule fetched", zap.String("account_id", accountID))
	}
}

// SavingsByFrequency is the yearly total paid when amount recurs at the given frequency.
func (m *Manager) SavingsByFrequency(amount decimal.Decimal, frequency autopay.Frequency) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(frequency.PerYear()))
}

// Promotions lists Bank A's current auto-payment offers.
func (m *Manager) Promotions() []string {
	return []string{
		"First 3 months free!",
		"No fee for monthly payments above $5000",
	}
}
