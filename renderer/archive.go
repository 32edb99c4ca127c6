package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/velovault/velo"
)

// ArchivesMarkdown renders the list of named snapshots.
func ArchivesMarkdown(v *velo.Vault) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Archives")
	names := v.ArchiveNames()
	if len(names) == 0 {
		doc.PlainText("No archives found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Name", "Archived", "Capital", "Units", "Entries"},
		Rows:      [][]string{},
	}
	for _, name := range names {
		a, _ := v.Archive(name)
		table.Rows = append(table.Rows, []string{
			name,
			a.Date.Format("02/01/2006 15:04"),
			a.TotalCapital.String(),
			fmt.Sprint(len(a.Envelopes)),
			fmt.Sprint(len(a.Transactions)),
		})
	}
	doc.Table(table)

	return doc.String()
}
