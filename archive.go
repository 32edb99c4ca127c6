package velo

import (
	"sort"
	"strings"
	"time"
)

// Archive is a named, frozen copy of the whole ledger, taken and restored as
// one piece.
type Archive struct {
	Date         time.Time     `json:"date"`
	Envelopes    []*Envelope   `json:"envelopes"`
	Transactions []Transaction `json:"transactions"`
	TotalCapital Money         `json:"totalCapital"`
}

// clone returns an independent copy of the archive contents.
func (a Archive) clone() Archive {
	c := Archive{Date: a.Date, TotalCapital: a.TotalCapital}
	c.Envelopes = make([]*Envelope, 0, len(a.Envelopes))
	for _, e := range a.Envelopes {
		c.Envelopes = append(c.Envelopes, e.clone())
	}
	c.Transactions = append([]Transaction(nil), a.Transactions...)
	return c
}

// Vault is the aggregate root: the live ledger plus the named archives.
// A single Vault value owns all mutable state of the application.
type Vault struct {
	Ledger   *Ledger
	archives map[string]Archive
}

// NewVault creates an empty vault.
func NewVault() *Vault {
	return &Vault{Ledger: NewLedger(), archives: make(map[string]Archive)}
}

// Archive returns the named archive.
func (v *Vault) Archive(name string) (Archive, bool) {
	a, ok := v.archives[name]
	return a, ok
}

// ArchiveNames returns all archive names, sorted.
func (v *Vault) ArchiveNames() []string {
	names := make([]string, 0, len(v.archives))
	for name := range v.archives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateArchive snapshots the live ledger under a name, silently overwriting
// a previous archive of the same name. The copy is deep: later mutations of
// the live ledger never leak into it.
func (v *Vault) CreateArchive(name string) error {
	if strings.TrimSpace(name) == "" {
		return verrf("archive name is empty")
	}
	frozen := v.Ledger.clone()
	v.archives[name] = Archive{
		Date:         time.Now(),
		Envelopes:    frozen.envelopes,
		Transactions: frozen.transactions,
		TotalCapital: frozen.capital,
	}
	return nil
}

// RestoreArchive returns the confirmable commit replacing the live ledger
// wholesale with the archived state. The archive entry itself is untouched,
// so a restore can be repeated.
func (v *Vault) RestoreArchive(name string) (*Commit[Archive], error) {
	a, ok := v.archives[name]
	if !ok {
		return nil, &NotFoundError{Kind: "archive", Key: name}
	}
	msg := "load archive " + name + "? this overwrites the current active data with the snapshot"
	return newCommit(msg, func() Archive {
		thawed := a.clone()
		v.Ledger = &Ledger{
			capital:      thawed.TotalCapital,
			envelopes:    thawed.Envelopes,
			transactions: thawed.Transactions,
		}
		return a
	}), nil
}

// DeleteArchive returns the confirmable commit removing the named archive
// only; the live ledger is untouched.
func (v *Vault) DeleteArchive(name string) (*Commit[Archive], error) {
	a, ok := v.archives[name]
	if !ok {
		return nil, &NotFoundError{Kind: "archive", Key: name}
	}
	return newCommit("delete archive "+name+"?", func() Archive {
		delete(v.archives, name)
		return a
	}), nil
}
