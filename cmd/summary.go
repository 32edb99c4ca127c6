package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the vault dashboard" }
func (*summaryCmd) Usage() string {
	return `velo summary

  Shows the total capital, the vaulted and liquid split, lifetime credit and
  debit, and every envelope with its balance and limit.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.SummaryMarkdown(vault.Ledger))
	return subcommands.ExitSuccess
}
