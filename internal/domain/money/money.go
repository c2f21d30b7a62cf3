// Package money implements the fixed-point monetary quantity used across
// the ledger. Amounts are signed integers scaled by 10,000 (four
// fractional digits); arithmetic is overflow-checked and never wraps.
package money

import (
	"errors"
	"fmt"
	"math"
)

// Scale is the fixed scaling factor: one unit is 10,000 minor ticks.
const Scale = 10_000

// ErrOverflow reports that an addition or subtraction exceeded the
// representable range. It is always a per-transaction failure and never
// corrupts state: results are checked before any commit.
var ErrOverflow = errors.New("numerical overflow")

// Money is an exact monetary amount in scaled minor ticks. Equality and
// ordering are value-based on the underlying integer.
type Money int64

// Add returns a+b, or ErrOverflow if the mathematical sum is outside the
// representable range.
func (a Money) Add(b Money) (Money, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns a-b, or ErrOverflow if the mathematical difference is
// outside the representable range. The result may legitimately be
// negative during dispute bookkeeping.
func (a Money) Sub(b Money) (Money, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// String renders the canonical textual form: [-]<integer>.<4-digit
// fraction>, zero-padded, with the sign only on negative values.
func (a Money) String() string {
	sign := ""
	mag := uint64(a)
	if a < 0 {
		sign = "-"
		mag = -uint64(a)
	}
	return fmt.Sprintf("%s%d.%04d", sign, mag/Scale, mag%Scale)
}
