// Package account implements the per-client balance state machine.
package account

import (
	"errors"

	"github.com/payments-replay-engine/internal/domain/money"
	"github.com/payments-replay-engine/internal/domain/shared"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLockedAccount     = errors.New("locked account")
)

// Account is the balance state of one client: spendable funds, funds
// frozen pending dispute, and whether the account has been permanently
// locked by a chargeback. Accounts are created lazily on first reference
// and mutated only through the five operations below.
type Account struct {
	Client    shared.ClientID
	Available money.Money
	Held      money.Money
	Locked    bool
}

// New returns a fresh zero-balance, unlocked account for the client.
func New(client shared.ClientID) *Account {
	return &Account{Client: client}
}

// Total returns available + held.
func (a *Account) Total() (money.Money, error) {
	return a.Available.Add(a.Held)
}

func (a *Account) checkUnlocked() error {
	if a.Locked {
		return ErrLockedAccount
	}
	return nil
}

// Deposit credits amount to the available balance. Fails on a locked
// account or on overflow, without mutating state.
func (a *Account) Deposit(amount money.Money) error {
	if err := a.checkUnlocked(); err != nil {
		return err
	}

	available, err := a.Available.Add(amount)
	if err != nil {
		return err
	}

	a.Available = available
	return nil
}

// Withdraw debits amount from the available balance. Fails on a locked
// account, on overflow, or with ErrInsufficientFunds if the resulting
// available balance would be negative. This is the only operation that
// enforces balance sufficiency as a domain rule.
func (a *Account) Withdraw(amount money.Money) error {
	if err := a.checkUnlocked(); err != nil {
		return err
	}

	available, err := a.Available.Sub(amount)
	if err != nil {
		return err
	}
	if available < 0 {
		return ErrInsufficientFunds
	}

	a.Available = available
	return nil
}

// Dispute moves amount from available to held. It deliberately does not
// check the locked flag: the ledger has already resolved the referenced
// transaction to a previously deposited amount, and dispute bookkeeping
// on a locked account is a data-history question, not a live-funds one.
// Available may go negative here; no successful deposit or withdrawal
// path ever exposes a negative available balance.
func (a *Account) Dispute(amount money.Money) error {
	available, err := a.Available.Sub(amount)
	if err != nil {
		return err
	}
	held, err := a.Held.Add(amount)
	if err != nil {
		return err
	}

	a.Available = available
	a.Held = held
	return nil
}

// Resolve reverses a dispute, moving amount from held back to available.
func (a *Account) Resolve(amount money.Money) error {
	available, err := a.Available.Add(amount)
	if err != nil {
		return err
	}
	held, err := a.Held.Sub(amount)
	if err != nil {
		return err
	}

	a.Available = available
	a.Held = held
	return nil
}

// Chargeback removes amount from held and permanently locks the account.
func (a *Account) Chargeback(amount money.Money) error {
	held, err := a.Held.Sub(amount)
	if err != nil {
		return err
	}

	a.Held = held
	a.Locked = true
	return nil
}
