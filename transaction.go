package velo

import "strings"

// TxType carries the sign of a transaction; amounts are always positive
// magnitudes.
type TxType string

const (
	Debit  TxType = "debit"
	Credit TxType = "credit"
)

// TxStatus is the settlement state of a transaction. Every transaction is
// written completed; pending is reserved.
type TxStatus string

const (
	Pending   TxStatus = "pending"
	Completed TxStatus = "completed"
)

// SystemEnvelopeID is the sentinel envelope id carried by income
// transactions, which belong to no envelope.
const SystemEnvelopeID = "system"

// incomeEnvelopeName is the denormalized envelope name written on income.
const incomeEnvelopeName = "CASH_IN"

// paymentMerchant labels debits recorded from a manual payment intent.
const paymentMerchant = "MANUAL PAYMENT"

// Transaction is an immutable entry of the append-only log. Once appended it
// is never edited or retracted; EnvelopeName keeps the label readable after
// the envelope is renamed or deleted.
type Transaction struct {
	ID           string    `json:"id"`
	EnvelopeID   string    `json:"envelopeId"`
	EnvelopeName string    `json:"envelopeName,omitempty"`
	Amount       Money     `json:"amount"`
	Merchant     string    `json:"merchant"`
	Timestamp    Timestamp `json:"timestamp"`
	Type         TxType    `json:"type"`
	Status       TxStatus  `json:"status"`
	Note         string    `json:"note,omitempty"`
}

// HistoryFilter narrows the transaction log the way the history screen does.
//
// Unit is "" for all units, SystemEnvelopeID for income only, or an envelope
// id (live or since deleted). Search matches the amount's decimal string or
// the note, case-insensitively.
type HistoryFilter struct {
	Unit   string
	Search string
}

// Match reports whether the transaction passes the filter.
func (f HistoryFilter) Match(tx Transaction) bool {
	if f.Unit != "" && tx.EnvelopeID != f.Unit {
		return false
	}
	if f.Search == "" {
		return true
	}
	if strings.Contains(tx.Amount.Plain(), f.Search) {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Note), strings.ToLower(f.Search))
}
