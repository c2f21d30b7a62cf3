// Package replay drives one full pass over a transaction stream: decode,
// convert, apply, and finally project the touched accounts to the output
// writer. Processing is strictly sequential in input order.
package replay

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/payments-replay-engine/internal/csvio"
	"github.com/payments-replay-engine/internal/domain/ledger"
	"github.com/payments-replay-engine/internal/metrics"
)

// Runner owns the ledger for one run. Per-record conversion and
// processing failures are reported as warnings and do not stop the run
// unless strict mode is on; stream-level errors are fatal and returned.
type Runner struct {
	ledger  *ledger.Ledger
	metrics *metrics.Collector
	strict  bool
	logger  *slog.Logger
}

// NewRunner builds a runner around a fresh ledger.
func NewRunner(l *ledger.Ledger, collector *metrics.Collector, strict bool, logger *slog.Logger) *Runner {
	return &Runner{
		ledger:  l,
		metrics: collector,
		strict:  strict,
		logger:  logger,
	}
}

// Run replays the input stream against the ledger and writes the final
// account records to output. It returns an error only for run-level
// failures: unreadable or malformed input, or any record failure when
// strict mode is on.
func (r *Runner) Run(input io.Reader, output io.Writer) error {
	reader := csvio.NewReader(input)

	var applied, warnings int
	for {
		record, pos, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		r.metrics.RecordRead()

		tx, err := record.ToTx()
		if err == nil {
			err = r.ledger.Process(tx)
		}
		if err != nil {
			warnings++
			r.metrics.TxFailed(record.Kind)
			r.logger.Warn("transaction failed",
				"record", pos,
				"kind", record.Kind,
				"client", record.Client,
				"tx", record.Tx,
				"error", err,
			)
			if r.strict {
				return fmt.Errorf("record %d: %w", pos, err)
			}
			continue
		}

		applied++
		r.metrics.TxApplied(record.Kind)
	}

	accounts := r.ledger.Accounts()
	r.metrics.SetAccountsTouched(len(accounts))

	if err := csvio.NewWriter(output).WriteAccounts(accounts); err != nil {
		return fmt.Errorf("writing account records: %w", err)
	}

	r.logger.Info("replay complete",
		"applied", applied,
		"warnings", warnings,
		"accounts", len(accounts),
	)
	return nil
}
