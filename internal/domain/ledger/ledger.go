// Package ledger implements the bank-wide ledger: it owns every account
// touched during a replay and the amount history used to settle later
// disputes, and routes each incoming transaction to the correct account
// operation.
package ledger

import (
	"errors"
	"fmt"

	"github.com/payments-replay-engine/internal/domain/account"
	"github.com/payments-replay-engine/internal/domain/money"
	"github.com/payments-replay-engine/internal/domain/shared"
)

// ErrNoSuchTransaction indicates a dispute, resolve or chargeback that
// references a transaction id with no recorded amount.
var ErrNoSuchTransaction = errors.New("referenced transaction not found")

// Ledger holds all accounts and the per-transaction amount history. A
// fresh Ledger is constructed per run and owned exclusively by the
// driver; Process is the only mutator.
type Ledger struct {
	accounts map[shared.ClientID]*account.Account
	amounts  map[shared.TxID]money.Money
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[shared.ClientID]*account.Account),
		amounts:  make(map[shared.TxID]money.Money),
	}
}

// Account looks up the account for a client, creating a fresh
// zero-balance account if the client has never been seen. Every
// transaction kind that reaches its account creates it, including a
// dispute from a client who never deposited; that permissiveness is a
// deliberate simplification of this ledger. Dispute, resolve and
// chargeback resolve their referenced amount first, so an unknown
// reference fails before any account is created.
func (l *Ledger) Account(client shared.ClientID) *account.Account {
	acc, ok := l.accounts[client]
	if !ok {
		acc = account.New(client)
		l.accounts[client] = acc
	}
	return acc
}

// amount returns the recorded amount of a previous deposit.
func (l *Ledger) amount(id shared.TxID) (money.Money, error) {
	amount, ok := l.amounts[id]
	if !ok {
		return 0, ErrNoSuchTransaction
	}
	return amount, nil
}

// Process applies a single transaction. Each account operation is an
// atomic check-then-mutate, so a failure leaves all balances exactly as
// they were before the failing step. Failures are returned, never
// panicked; each call is independent and the caller decides whether to
// continue.
//
// Only deposits are recorded in the amount history: by policy,
// withdrawals are not disputable. Transaction ids are assumed unique per
// the input contract; a colliding deposit id overwrites the prior entry
// rather than being rejected. History entries are never removed, so a
// transaction may be disputed, resolved and disputed again.
func (l *Ledger) Process(tx shared.Tx) error {
	switch tx := tx.(type) {
	case shared.Deposit:
		if err := l.Account(tx.Client).Deposit(tx.Amount); err != nil {
			return err
		}
		l.amounts[tx.ID] = tx.Amount
		return nil
	case shared.Withdrawal:
		return l.Account(tx.Client).Withdraw(tx.Amount)
	case shared.Dispute:
		amount, err := l.amount(tx.ID)
		if err != nil {
			return err
		}
		return l.Account(tx.Client).Dispute(amount)
	case shared.Resolve:
		amount, err := l.amount(tx.ID)
		if err != nil {
			return err
		}
		return l.Account(tx.Client).Resolve(amount)
	case shared.Chargeback:
		amount, err := l.amount(tx.ID)
		if err != nil {
			return err
		}
		return l.Account(tx.Client).Chargeback(amount)
	default:
		// The Tx set is closed; the input layer never constructs
		// anything else.
		return fmt.Errorf("unhandled transaction variant %T", tx)
	}
}

// Accounts returns every account ever referenced, in unspecified order.
func (l *Ledger) Accounts() []*account.Account {
	accounts := make([]*account.Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		accounts = append(accounts, acc)
	}
	return accounts
}
