package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
	"github.com/velovault/velo/renderer"
)

type historyCmd struct {
	unit   string
	search string
	income bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the filtered transaction log" }
func (*historyCmd) Usage() string {
	return `velo history [-unit <id|name>] [-search <text>] [-income]

  Lists transactions newest first. -unit keeps entries of one envelope
  (live or deleted when given by id), -income keeps income entries only,
  -search matches the amount digits or the note.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.unit, "unit", "", "Envelope id or name to filter on.")
	f.StringVar(&p.search, "search", "", "Text matched against amount or note.")
	f.BoolVar(&p.income, "income", false, "Show income entries only.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.income && p.unit != "" {
		fmt.Fprintln(os.Stderr, "Error: -income and -unit cannot be used together.")
		return subcommands.ExitUsageError
	}

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	filter := velo.HistoryFilter{Search: p.search}
	switch {
	case p.income:
		filter.Unit = velo.SystemEnvelopeID
	case p.unit != "":
		// Prefer a live envelope match; otherwise take the value as a raw
		// id, which still reaches entries of deleted envelopes.
		if env := vault.Ledger.FindEnvelope(p.unit); env != nil {
			filter.Unit = env.ID
		} else {
			filter.Unit = p.unit
		}
	}

	printMarkdown(renderer.HistoryMarkdown(vault.Ledger.History(filter)))
	return subcommands.ExitSuccess
}
