package shared

import "github.com/payments-replay-engine/internal/domain/money"

// Tx is the closed set of transaction variants. A Tx is constructed once
// at the input boundary and dispatched by type, never by re-inspecting a
// string tag. The unexported marker method keeps the set closed.
type Tx interface {
	isTx()
}

// Deposit credits an amount to a client's available funds.
type Deposit struct {
	Client ClientID
	ID     TxID
	Amount money.Money
}

// Withdrawal debits an amount from a client's available funds.
type Withdrawal struct {
	Client ClientID
	ID     TxID
	Amount money.Money
}

// Dispute freezes the amount of a previously recorded deposit.
type Dispute struct {
	Client ClientID
	ID     TxID
}

// Resolve withdraws a dispute claim and unfreezes its amount.
type Resolve struct {
	Client ClientID
	ID     TxID
}

// Chargeback finalizes a dispute, removing the held amount and
// permanently locking the account.
type Chargeback struct {
	Client ClientID
	ID     TxID
}

func (Deposit) isTx()    {}
func (Withdrawal) isTx() {}
func (Dispute) isTx()    {}
func (Resolve) isTx()    {}
func (Chargeback) isTx() {}
