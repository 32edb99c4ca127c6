package velo

import (
	"iter"
	"strings"

	"github.com/google/uuid"
)

// Ledger is the aggregate of total capital, envelopes and the transaction
// log. It is the single mutable state of the vault; every operation
// validates against it before touching it, so a rejected intent leaves it
// exactly as it was.
//
// Envelopes keep insertion order. Transactions are kept newest-first, the
// canonical read order of the log.
type Ledger struct {
	capital      Money
	envelopes    []*Envelope
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// TotalCapital returns the pool of capital, allocated or not.
func (l *Ledger) TotalCapital() Money { return l.capital }

// Allocated returns the sum of all envelope limits.
func (l *Ledger) Allocated() Money {
	var sum Money
	for _, e := range l.envelopes {
		sum = sum.Add(e.Limit)
	}
	return sum
}

// Unallocated returns the liquid capital: total minus allocated. It can go
// negative if the total is corrected downward below the allocations; the
// mutation gates, not this accessor, keep it non-negative.
func (l *Ledger) Unallocated() Money {
	return l.capital.Sub(l.Allocated())
}

// TotalCredit returns the lifetime sum of credit amounts in the log.
func (l *Ledger) TotalCredit() Money { return l.totalOf(Credit) }

// TotalDebit returns the lifetime sum of debit amounts in the log.
func (l *Ledger) TotalDebit() Money { return l.totalOf(Debit) }

func (l *Ledger) totalOf(kind TxType) Money {
	var sum Money
	for _, tx := range l.transactions {
		if tx.Type == kind {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum
}

// Envelope returns the envelope with this id, or nil if unknown.
func (l *Ledger) Envelope(id string) *Envelope {
	for _, e := range l.envelopes {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindEnvelope resolves an envelope by id first, then by unique
// case-insensitive name. It is a CLI convenience, not part of the state
// machine.
func (l *Ledger) FindEnvelope(key string) *Envelope {
	if e := l.Envelope(key); e != nil {
		return e
	}
	var found *Envelope
	for _, e := range l.envelopes {
		if strings.EqualFold(e.Name, key) {
			if found != nil {
				return nil // ambiguous
			}
			found = e
		}
	}
	return found
}

// Envelopes iterates over envelopes in insertion order.
func (l *Ledger) Envelopes() iter.Seq[*Envelope] {
	return func(yield func(*Envelope) bool) {
		for _, e := range l.envelopes {
			if !yield(e) {
				return
			}
		}
	}
}

// Transactions iterates over the log newest-first, keeping entries accepted
// by every filter.
func (l *Ledger) Transactions(filters ...HistoryFilter) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, f := range filters {
				if !f.Match(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// History returns the filtered log as a slice, newest-first.
func (l *Ledger) History(filter HistoryFilter) []Transaction {
	var out []Transaction
	for _, tx := range l.Transactions(filter) {
		out = append(out, tx)
	}
	return out
}

// prepend puts a transaction at the head of the log.
func (l *Ledger) prepend(tx Transaction) {
	l.transactions = append([]Transaction{tx}, l.transactions...)
}

// CreateEnvelope validates a new envelope against the liquid pool and
// returns the confirmable commit. The new envelope starts full:
// balance = limit.
func (l *Ledger) CreateEnvelope(name string, limit Money, color, icon string) (*Commit[*Envelope], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, verrf("envelope name is empty")
	}
	if !limit.IsPositive() {
		return nil, verrf("limit must be positive, got %s", limit)
	}
	if limit.GreaterThan(l.Unallocated()) {
		return nil, verrf("limit %s exceeds liquid capital %s", limit, l.Unallocated())
	}
	if color == "" {
		color = defaultColor
	}
	msg := "create envelope " + name + " with allocation limit " + limit.String() + "?"
	return newCommit(msg, func() *Envelope {
		e := &Envelope{
			ID:      uuid.NewString(),
			Name:    name,
			Balance: limit,
			Limit:   limit,
			Color:   color,
			Icon:    icon,
		}
		l.envelopes = append(l.envelopes, e)
		return e
	}), nil
}

// UpdateEnvelope validates an edit and returns the confirmable commit.
//
// The headroom for a new limit is the liquid pool plus the envelope's own
// current allocation: resizing first hands the old allocation back, then
// takes the new one. The balance is never recomputed, so it can end up above
// a lowered limit.
func (l *Ledger) UpdateEnvelope(id string, patch EnvelopePatch) (*Commit[*Envelope], error) {
	e := l.Envelope(id)
	if e == nil {
		return nil, &NotFoundError{Kind: "envelope", Key: id}
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, verrf("envelope name is empty")
	}
	if patch.Limit != nil {
		headroom := l.Unallocated().Add(e.Limit)
		if !patch.Limit.IsPositive() {
			return nil, verrf("limit must be positive, got %s", *patch.Limit)
		}
		if patch.Limit.GreaterThan(headroom) {
			return nil, verrf("limit %s exceeds available capital %s", *patch.Limit, headroom)
		}
	}
	msg := "reconfigure envelope " + e.Name + "?"
	if patch.Limit != nil {
		msg = "reconfigure envelope " + e.Name + ", setting allocation limit to " + patch.Limit.String() + "?"
	}
	return newCommit(msg, func() *Envelope {
		if patch.Name != nil {
			e.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Limit != nil {
			e.Limit = *patch.Limit
		}
		if patch.Color != nil {
			e.Color = *patch.Color
		}
		if patch.Icon != nil {
			e.Icon = *patch.Icon
		}
		return e
	}), nil
}

// DeleteEnvelope returns the confirmable commit removing an envelope. Its
// allocation returns to the liquid pool; its past transactions stay in the
// log under the now dangling envelope id.
func (l *Ledger) DeleteEnvelope(id string) (*Commit[*Envelope], error) {
	e := l.Envelope(id)
	if e == nil {
		return nil, &NotFoundError{Kind: "envelope", Key: id}
	}
	msg := "delete envelope " + e.Name + " and release its allocation? this cannot be undone"
	return newCommit(msg, func() *Envelope {
		for i, cand := range l.envelopes {
			if cand.ID == id {
				l.envelopes = append(l.envelopes[:i], l.envelopes[i+1:]...)
				break
			}
		}
		return e
	}), nil
}

// RecordPayment applies a confirmed payment against an envelope: balance and
// limit both drop by the amount, so the spent capital leaves the allocation
// entirely, and the total capital drops with it. Exactly one completed debit
// is appended. Nothing stops balance or limit from going negative.
//
// Payments are trusted as settled the moment the user submits them, so there
// is no confirmation gate here.
func (l *Ledger) RecordPayment(envelopeID string, amount Money, note string) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, verrf("amount must be positive, got %s", amount)
	}
	if strings.TrimSpace(note) == "" {
		return Transaction{}, verrf("a payment requires a note")
	}
	e := l.Envelope(envelopeID)
	if e == nil {
		return Transaction{}, verrf("envelope %q does not resolve", envelopeID)
	}
	e.Balance = e.Balance.Sub(amount)
	e.Limit = e.Limit.Sub(amount)
	l.capital = l.capital.Sub(amount)
	tx := Transaction{
		ID:           uuid.NewString(),
		EnvelopeID:   e.ID,
		EnvelopeName: e.Name,
		Amount:       amount,
		Merchant:     paymentMerchant,
		Timestamp:    Now(),
		Type:         Debit,
		Status:       Completed,
		Note:         note,
	}
	l.prepend(tx)
	return tx, nil
}

// RecordIncome validates a credit and returns the confirmable commit: total
// capital grows by the amount and one completed credit is appended under the
// system envelope. No envelope is touched; the new capital lands in the
// liquid pool. A blank source is recorded as OTHER.
func (l *Ledger) RecordIncome(source string, amount Money, note string) (*Commit[Transaction], error) {
	if !amount.IsPositive() {
		return nil, verrf("amount must be positive, got %s", amount)
	}
	if strings.TrimSpace(source) == "" {
		source = "OTHER"
	}
	msg := "add " + amount.String() + " from " + source + " to the total available assets?"
	return newCommit(msg, func() Transaction {
		tx := Transaction{
			ID:           uuid.NewString(),
			EnvelopeID:   SystemEnvelopeID,
			EnvelopeName: incomeEnvelopeName,
			Amount:       amount,
			Merchant:     source,
			Timestamp:    Now(),
			Type:         Credit,
			Status:       Completed,
			Note:         note,
		}
		l.capital = l.capital.Add(amount)
		l.prepend(tx)
		return tx
	}), nil
}

// SetTotalCapital returns the confirmable commit replacing the total capital
// outright. This is an out-of-band correction: it produces no log entry and
// is not gated against the allocations, so the liquid pool can go negative.
func (l *Ledger) SetTotalCapital(value Money) (*Commit[Money], error) {
	diff := value.Sub(l.capital)
	action := "adding"
	if diff.IsNegative() {
		action = "removing"
		diff = diff.Neg()
	}
	msg := "adjust total capital to " + value.String() + " (" + action + " " + diff.String() + ")?"
	return newCommit(msg, func() Money {
		l.capital = value
		return l.capital
	}), nil
}

// clone returns a deep, independent copy of the ledger.
func (l *Ledger) clone() *Ledger {
	c := &Ledger{capital: l.capital}
	c.envelopes = make([]*Envelope, 0, len(l.envelopes))
	for _, e := range l.envelopes {
		c.envelopes = append(c.envelopes, e.clone())
	}
	c.transactions = append([]Transaction(nil), l.transactions...)
	return c
}
