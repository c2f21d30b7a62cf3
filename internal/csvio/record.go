// Package csvio reads the delimited transaction stream and writes the
// final account states. It owns all text-level concerns: header mapping,
// field trimming, decimal-to-fixed-point conversion and canonical
// rendering. No domain logic lives here.
package csvio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/payments-replay-engine/internal/domain/money"
	"github.com/payments-replay-engine/internal/domain/shared"
)

// Common errors
var (
	ErrMissingAmount     = errors.New("amount missing in transaction record")
	ErrUnknownRecordType = errors.New("unknown transaction record type")
)

// Record kinds accepted on the wire.
const (
	kindDeposit    = "deposit"
	kindWithdrawal = "withdrawal"
	kindDispute    = "dispute"
	kindResolve    = "resolve"
	kindChargeback = "chargeback"
)

// Record is the decoded form of one input row, before validation.
// Amount keeps the raw decimal text; it is converted only once the kind
// is known to require it.
type Record struct {
	Kind   string
	Client shared.ClientID
	Tx     shared.TxID
	Amount string
}

// ToTx validates the record and converts it into a typed transaction.
// Deposits and withdrawals fail with ErrMissingAmount when the amount
// field is absent; dispute, resolve and chargeback ignore any amount.
func (r Record) ToTx() (shared.Tx, error) {
	switch r.Kind {
	case kindDeposit:
		amount, err := r.amount()
		if err != nil {
			return nil, err
		}
		return shared.Deposit{Client: r.Client, ID: r.Tx, Amount: amount}, nil
	case kindWithdrawal:
		amount, err := r.amount()
		if err != nil {
			return nil, err
		}
		return shared.Withdrawal{Client: r.Client, ID: r.Tx, Amount: amount}, nil
	case kindDispute:
		return shared.Dispute{Client: r.Client, ID: r.Tx}, nil
	case kindResolve:
		return shared.Resolve{Client: r.Client, ID: r.Tx}, nil
	case kindChargeback:
		return shared.Chargeback{Client: r.Client, ID: r.Tx}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, r.Kind)
	}
}

func (r Record) amount() (money.Money, error) {
	if r.Amount == "" {
		return 0, ErrMissingAmount
	}
	return ParseAmount(r.Amount)
}

// ParseAmount converts decimal text to the scaled fixed-point
// representation without any floating-point intermediate. Precision
// beyond four fractional digits rounds half away from zero; magnitudes
// outside the representable range fail with money.ErrOverflow.
func ParseAmount(s string) (money.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	scaled := d.Shift(4).Round(0)
	i := scaled.BigInt()
	if !i.IsInt64() {
		return 0, fmt.Errorf("amount %q: %w", s, money.ErrOverflow)
	}
	return money.Money(i.Int64()), nil
}
