package autopay

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Manager is the contract every bank-specific auto-payment implementation satisfies.
type Manager interface {
	ServiceName() string
	// Fee is charged per auto-payment transaction.
	Fee() decimal.Decimal
	// MaxAmount is the highest amount a schedule may carry.
	MaxAmount() decimal.Decimal

	Enable(ctx context.Context, accountID string) (Result, error)
	Disable(ctx context.Context, accountID string) (Result, error)
	// UpdateAmount reports validation failures through Result, not through the error.
	UpdateAmount(ctx context.Context, accountID string, amount decimal.Decimal) (Result, error)
	// Schedule is lazy: the backend is only queried when the sequence is ranged,
	// and every range queries it again.
	Schedule(ctx context.Context, accountID string) iter.Seq2[Schedule, error]
}

// Result is the outcome of a mutating auto-payment operation.
// TransactionID is empty when Success is false.
type Result struct {
	Success       bool
	Message       string
	TransactionID string
}

// Succeeded builds a successful Result.
func Succeeded(message, transactionID string) Result {
	return Result{Success: true, Message: message, TransactionID: transactionID}
}

// Failed builds a failed Result.
func Failed(message string) Result {
	return Result{Message: message}
}

// Schedule describes one recurring payment.
type Schedule struct {
	ScheduleID      string
	Amount          decimal.Decimal
	Frequency       Frequency
	NextPaymentDate time.Time
	AccountID       string
	BeneficiaryName string
}

// NextPaymentDay formats NextPaymentDate as a calendar date.
func (s Schedule) NextPaymentDay() string {
	return s.NextPaymentDate.Format(time.DateOnly)
}
