package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type resetCmd struct {
	assumeYes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "factory reset: wipe every persisted blob" }
func (*resetCmd) Usage() string {
	return `velo reset [-y]

  Discards all stored data: envelopes, transactions, capital and archives.
  This cannot be undone.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	msg := "wipe ALL data including envelopes, transactions and archives? this cannot be undone"
	if !confirm(msg, p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := velo.Reset(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("vault reset to factory state")
	return subcommands.ExitSuccess
}
