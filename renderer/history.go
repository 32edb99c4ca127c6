package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/velovault/velo"
)

// HistoryMarkdown renders a filtered transaction log, newest first.
func HistoryMarkdown(txs []velo.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vault History")
	if len(txs) == 0 {
		doc.PlainText("No transaction logs found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"When", "Unit", "Merchant", "Note", "Amount"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		amount := tx.Amount
		if tx.Type == velo.Debit {
			amount = amount.Neg()
		}
		unit := tx.EnvelopeName
		if tx.Type == velo.Credit {
			unit = "FUNDS ADDED"
		}
		table.Rows = append(table.Rows, []string{
			tx.Timestamp.String(),
			unit,
			tx.Merchant,
			tx.Note,
			amount.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
