package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/payments-replay-engine/internal/domain/account"
)

// Writer renders final account states as delimited text, one record per
// account with the header client,available,held,total,locked. Money
// fields use the canonical fixed-point form; account order is whatever
// the caller supplies.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteAccounts writes the header followed by one record per account.
func (w *Writer) WriteAccounts(accounts []*account.Account) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, acc := range accounts {
		total, err := acc.Total()
		if err != nil {
			return fmt.Errorf("client %d: computing total balance: %w", acc.Client, err)
		}

		row := []string{
			strconv.FormatUint(uint64(acc.Client), 10),
			acc.Available.String(),
			acc.Held.String(),
			total.String(),
			strconv.FormatBool(acc.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("writing record for client %d: %w", acc.Client, err)
		}
	}

	w.csv.Flush()
	return w.csv.Error()
}
