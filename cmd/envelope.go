package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type newCmd struct {
	name      string
	limit     string
	color     string
	icon      string
	assumeYes bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create an envelope from the liquid capital" }
func (*newCmd) Usage() string {
	return `velo new -name <name> -limit <amount> [-color <hex>] [-icon <icon>] [-y]

  Creates a new envelope. The limit is taken from the unallocated (liquid)
  capital and the envelope starts full: balance equals limit.

Usage Examples:
$ velo new -name Food -limit 3000
`
}

func (p *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Name of the new envelope.")
	f.StringVar(&p.limit, "limit", "", "Allocation limit, taken from the liquid capital.")
	f.StringVar(&p.color, "color", "", "Display color (hex).")
	f.StringVar(&p.icon, "icon", "", "Display icon name.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := velo.ParseMoney(p.limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	commit, err := vault.Ledger.CreateEnvelope(p.name, limit, p.color, p.icon)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	env := commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("created envelope %s (%s)\n", env.Name, env.ID)
	return subcommands.ExitSuccess
}

type editCmd struct {
	id        string
	name      string
	limit     string
	color     string
	icon      string
	assumeYes bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "reconfigure an envelope" }
func (*editCmd) Usage() string {
	return `velo edit -id <id> [-name <name>] [-limit <amount>] [-color <hex>] [-icon <icon>] [-y]

  Edits an envelope in place. Only the flags given change; a new limit may
  use the liquid capital plus the envelope's own current allocation. The
  balance is never recomputed.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the envelope to edit.")
	f.StringVar(&p.name, "name", "", "New name.")
	f.StringVar(&p.limit, "limit", "", "New allocation limit.")
	f.StringVar(&p.color, "color", "", "New display color.")
	f.StringVar(&p.icon, "icon", "", "New display icon.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var patch velo.EnvelopePatch
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &p.name
		case "limit":
			limit, err := velo.ParseMoney(p.limit)
			if err != nil {
				parseErr = err
				return
			}
			patch.Limit = &limit
		case "color":
			patch.Color = &p.color
		case "icon":
			patch.Icon = &p.icon
		}
	})
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		return subcommands.ExitUsageError
	}

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	commit, err := vault.Ledger.UpdateEnvelope(p.id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	env := commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("updated envelope %s\n", env.Name)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id        string
	assumeYes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an envelope, releasing its allocation" }
func (*deleteCmd) Usage() string {
	return `velo delete -id <id> [-y]

  Removes an envelope. Its allocation returns to the liquid capital; its
  transaction history stays in the log.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the envelope to delete.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	commit, err := vault.Ledger.DeleteEnvelope(p.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	env := commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("deleted envelope %s\n", env.Name)
	return subcommands.ExitSuccess
}
