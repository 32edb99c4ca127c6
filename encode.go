package velo

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/velovault/velo/store"
)

// The state is persisted as four independent blobs, re-assembled at load.
// Key names are kept from the v2 storage layout.
const (
	BlobEnvelopes    = "velo_v2_envelopes"
	BlobTotalCapital = "velo_v2_total_capital"
	BlobTransactions = "velo_v2_transactions"
	BlobArchives     = "velo_v2_archives"
)

// Load reconstructs the vault from storage. A blob that is absent or does
// not parse falls back to its empty default: corrupt storage degrades data,
// it never crashes the application.
func Load(s store.Store) *Vault {
	v := NewVault()

	if raw, ok := getBlob(s, BlobEnvelopes); ok {
		var envelopes []*Envelope
		if err := json.Unmarshal(raw, &envelopes); err != nil {
			log.Printf("ignoring corrupt %s blob: %v", BlobEnvelopes, err)
		} else {
			v.Ledger.envelopes = envelopes
		}
	}

	if raw, ok := getBlob(s, BlobTotalCapital); ok {
		d, err := decimal.NewFromString(strings.TrimSpace(string(raw)))
		if err != nil {
			log.Printf("ignoring corrupt %s blob: %v", BlobTotalCapital, err)
		} else {
			v.Ledger.capital = M(d)
		}
	}

	if raw, ok := getBlob(s, BlobTransactions); ok {
		var transactions []Transaction
		if err := json.Unmarshal(raw, &transactions); err != nil {
			log.Printf("ignoring corrupt %s blob: %v", BlobTransactions, err)
		} else {
			v.Ledger.transactions = transactions
		}
	}

	if raw, ok := getBlob(s, BlobArchives); ok {
		archives := make(map[string]Archive)
		if err := json.Unmarshal(raw, &archives); err != nil {
			log.Printf("ignoring corrupt %s blob: %v", BlobArchives, err)
		} else {
			v.archives = archives
		}
	}

	return v
}

func getBlob(s store.Store, key string) ([]byte, bool) {
	raw, ok, err := s.Get(key)
	if err != nil {
		log.Printf("could not read %s blob: %v", key, err)
		return nil, false
	}
	return raw, ok
}

// Save serializes the full vault back into the four blobs.
func Save(s store.Store, v *Vault) error {
	envelopes := v.Ledger.envelopes
	if envelopes == nil {
		envelopes = []*Envelope{}
	}
	transactions := v.Ledger.transactions
	if transactions == nil {
		transactions = []Transaction{}
	}

	blobs := []struct {
		key   string
		value func() ([]byte, error)
	}{
		{BlobEnvelopes, func() ([]byte, error) { return json.Marshal(envelopes) }},
		{BlobTotalCapital, func() ([]byte, error) { return []byte(v.Ledger.capital.Plain()), nil }},
		{BlobTransactions, func() ([]byte, error) { return json.Marshal(transactions) }},
		{BlobArchives, func() ([]byte, error) { return json.Marshal(v.archives) }},
	}
	for _, b := range blobs {
		raw, err := b.value()
		if err != nil {
			return fmt.Errorf("could not encode %s: %w", b.key, err)
		}
		if err := s.Set(b.key, raw); err != nil {
			return fmt.Errorf("could not persist %s: %w", b.key, err)
		}
	}
	return nil
}

// Reset discards every persisted blob. The caller reinitializes the running
// state with NewVault.
func Reset(s store.Store) error {
	return s.Clear()
}

// StateJSON serializes the live state (not the archives) as one JSON
// document, for inspection and querying.
func StateJSON(v *Vault) ([]byte, error) {
	envelopes := v.Ledger.envelopes
	if envelopes == nil {
		envelopes = []*Envelope{}
	}
	transactions := v.Ledger.transactions
	if transactions == nil {
		transactions = []Transaction{}
	}
	state := struct {
		TotalCapital Money         `json:"totalCapital"`
		Allocated    Money         `json:"allocatedCapital"`
		Unallocated  Money         `json:"unallocatedCapital"`
		Envelopes    []*Envelope   `json:"envelopes"`
		Transactions []Transaction `json:"transactions"`
	}{
		TotalCapital: v.Ledger.capital,
		Allocated:    v.Ledger.Allocated(),
		Unallocated:  v.Ledger.Unallocated(),
		Envelopes:    envelopes,
		Transactions: transactions,
	}
	return json.MarshalIndent(state, "", "  ")
}
