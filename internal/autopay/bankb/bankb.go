// Package bankb is Bank B's SmartPay implementation of auto payment. Bank B
// talks to a slower backend and enforces a minimum amount.
package bankb

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
	enableLatency   = 800 * time.Millisecond
	disableLatency  = 600 * time.Millisecond
	scheduleLatency = 300 * time.Millisecond
	updateLatency   = 400 * time.Millisecond
)

var (
	fee       = decimal.RequireFromString("0.75")
	minAmount = decimal.NewFromInt(100)
	maxAmount = decimal.NewFromInt(100_000)

	loyaltyRate      = decimal.RequireFromString("0.01")
	tierUpgradeFloor = decimal.NewFromInt(10_000)

	nextPaymentDate = time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
)

// Manager implements autopay.Manager for Bank B.
type Manager struct {
	opts   autopay.Options
	logger *zap.Logger
}

var _ autopay.Manager = (*Manager)(nil)

// New creates Bank B's Manager.
func New(logger *zap.Logger, opts ...autopay.Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		opts:   autopay.NewOptions(opts...),
		logger: logger.Named("bankb_autopay"),
	}
}

func (m *Manager) ServiceName() string { return "BankB SmartPay" }

func (m *Manager) Fee() decimal.Decimal { return fee }

func (m *Manager) MaxAmount() decimal.Decimal { return maxAmount }

func (m *Manager) Enable(ctx context.Context, accountID string) (autopay.Result, error) {
	m.logger.Info("enabling auto payment", zap.String("account_id", accountID))

	if err := m.opts.Sleep(ctx, enableLatency); err != nil {
		return autopay.Result{}, err
	}

	txID := m.opts.TransactionID("BANKB-" + lastFour(accountID))
	m.logger.Info("auto payment enabled", zap.String("transaction_id", txID))

	return autopay.Succeeded(
		fmt.Sprintf("BankB SmartPay activated for account %s", accountID),
		txID,
	), nil
}

func (m *Manager) Disable(ctx context.Context, accountID string) (autopay.Result, error) {
	m.logger.Info("disabling auto payment", zap.String("account_id", accountID))

	if err := m.opts.Sleep(ctx, disableLatency); err != nil {
		return autopay.Result{}, err
	}

	return autopay.Succeeded(
		fmt.Sprintf("BankB SmartPay deactivated for account %s", accountID),
		m.opts.TransactionID("BANKB-TERMINATE"),
	), nil
}

func (m *Manager) UpdateAmount(ctx context.Context, accountID string, amount decimal.Decimal) (autopay.Result, error) {
	m.logger.Info("updating payment amount", zap.Stringer("amount", amount))

	if amount.LessThan(minAmount) {
		return autopay.Failed(fmt.Sprintf("BankB: Minimum amount must be $%s", minAmount.String())), nil
	}
	if amount.GreaterThan(maxAmount) {
		return autopay.Failed(fmt.Sprintf("BankB: Exceeds limit of $%s", maxAmount.StringFixed(2))), nil
	}

	if err := m.opts.Sleep(ctx, updateLatency); err != nil {
		return autopay.Result{}, err
	}

	return autopay.Succeeded(
		fmt.Sprintf("BankB: Payment amount updated to $%s", amount.StringFixed(2)),
		m.opts.TransactionID("BKB-MOD"),
	), nil
}

func (m *Manager) Schedule(ctx context.Context, accountID string) iter.Seq2[autopay.Schedule, error] {
	m.logger.Info("fetching payment schedule", zap.String("account_id", accountID))

	return func(yield func(autopay.Schedule, error) bool) {
		if err := m.opts.Sleep(ctx, scheduleLatency); err != nil {
			yield(autopay.Schedule{}, err)
			return
		}

		if !yield(autopay.Schedule{
			ScheduleID:      "BKB-" + accountID,
			Amount:          decimal.NewFromInt(2500),
			Frequency:       autopay.Weekly,
			NextPaymentDate: nextPaymentDate,
			AccountID:       accountID,
			BeneficiaryName: "Insurance Premium",
		}, nil) {
			return
		}

		m.logger.Info("schedule retrieved")
	}
}

// LoyaltyBonus is the 1% cashback earned on an auto payment.
func (m *Manager) LoyaltyBonus(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(loyaltyRate)
}

// TierUpgradeEligible reports whether a monthly auto-payment volume qualifies for the next tier.
func (m *Manager) TierUpgradeEligible(monthlyTotal decimal.Decimal) bool {
	return monthlyTotal.GreaterThanOrEqual(tierUpgradeFloor)
}

// Promotions lists Bank B's current SmartPay offers.
func (m *Manager) Promotions() []string {
	return []string{
		"1% cashback on all SmartPay transactions",
		"Free tier upgrade for payments > $10,000/month",
		"No fees for first year",
	}
}

func lastFour(accountID string) string {
	if len(accountID) <= 4 {
		return accountID
	}
	return accountID[len(accountID)-4:]
}
