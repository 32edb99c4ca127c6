package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type capitalCmd struct {
	set       string
	assumeYes bool
}

func (*capitalCmd) Name() string     { return "capital" }
func (*capitalCmd) Synopsis() string { return "show or correct the total capital" }
func (*capitalCmd) Usage() string {
	return `velo capital [-set <amount>] [-y]

  Without -set, prints the capital totals. With -set, replaces the total
  capital outright. This is an out-of-band correction: it writes no log
  entry and is not checked against the allocations, so the liquid capital
  can go negative.
`
}

func (p *capitalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New total capital.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *capitalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.set == "" {
		fmt.Printf("total: %s  vaulted: %s  liquid: %s\n",
			vault.Ledger.TotalCapital(), vault.Ledger.Allocated(), vault.Ledger.Unallocated())
		return subcommands.ExitSuccess
	}

	value, err := velo.ParseMoney(p.set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	commit, err := vault.Ledger.SetTotalCapital(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	total := commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("total capital is now %s\n", total)
	return subcommands.ExitSuccess
}
