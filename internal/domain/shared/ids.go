// Package shared holds the identifier types and the transaction variants
// that cross package boundaries between the input layer and the ledger.
package shared

// ClientID identifies one account holder.
type ClientID uint16

// TxID uniquely identifies one deposit or withdrawal transaction.
// Dispute, resolve and chargeback records reference an existing TxID
// rather than owning a fresh one.
type TxID uint32
