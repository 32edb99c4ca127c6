// Package renderer turns vault state into markdown reports for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/velovault/velo"
)

// SummaryMarkdown renders the dashboard view: capital totals, lifetime
// credit and debit, and the envelope grid.
func SummaryMarkdown(l *velo.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vault Summary")
	doc.PlainText(fmt.Sprintf("Total capital: %s", l.TotalCapital()))

	doc.H2("Breakdown")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Vaulted", l.Allocated().String()},
			{"Liquid", l.Unallocated().String()},
			{"Credit (lifetime)", l.TotalCredit().String()},
			{"Debit (lifetime)", l.TotalDebit().String()},
		},
	})

	doc.H2("Allocation Units")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Name", "Balance", "Limit", "ID"},
		Rows:      [][]string{},
	}
	for e := range l.Envelopes() {
		table.Rows = append(table.Rows, []string{e.Name, e.Balance.String(), e.Limit.String(), e.ID})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No envelopes yet.")
	} else {
		doc.Table(table)
	}

	return doc.String()
}
