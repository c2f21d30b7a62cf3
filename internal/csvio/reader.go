package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/payments-replay-engine/internal/domain/shared"
)

// Reader decodes transaction records from a delimited text stream. The
// first row is the header; column order is taken from it. Rows may carry
// fewer fields than the header (dispute rows routinely omit the amount)
// and all fields are trimmed of surrounding whitespace.
type Reader struct {
	csv  *csv.Reader
	cols map[string]int
	pos  int
}

// NewReader wraps an input stream. No data is read until the first call
// to Read.
func NewReader(r io.Reader) *Reader {
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	return &Reader{csv: c}
}

// Read returns the next record and its 1-based position in the stream.
// It returns io.EOF at end of input. Any other error is a malformed
// stream and fatal to the run: a broken row shape or a non-numeric
// client or tx id means the input contract itself is violated.
func (r *Reader) Read() (Record, int, error) {
	if r.cols == nil {
		if err := r.readHeader(); err != nil {
			return Record{}, 0, err
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, r.pos, io.EOF
		}
		return Record{}, r.pos + 1, fmt.Errorf("reading record %d: %w", r.pos+1, err)
	}
	r.pos++

	field := func(name string) string {
		i, ok := r.cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	client, err := strconv.ParseUint(field("client"), 10, 16)
	if err != nil {
		return Record{}, r.pos, fmt.Errorf("record %d: invalid client id: %w", r.pos, err)
	}
	tx, err := strconv.ParseUint(field("tx"), 10, 32)
	if err != nil {
		return Record{}, r.pos, fmt.Errorf("record %d: invalid tx id: %w", r.pos, err)
	}

	return Record{
		Kind:   field("type"),
		Client: shared.ClientID(client),
		Tx:     shared.TxID(tx),
		Amount: field("amount"),
	}, r.pos, nil
}

func (r *Reader) readHeader() error {
	row, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("reading header: %w", err)
	}

	r.cols = make(map[string]int, len(row))
	for i, name := range row {
		r.cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := r.cols[required]; !ok {
			return fmt.Errorf("header missing required column %q", required)
		}
	}
	return nil
}
