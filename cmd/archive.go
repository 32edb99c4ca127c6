package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo/renderer"
)

type archiveCmd struct {
	remove    bool
	assumeYes bool
}

func (*archiveCmd) Name() string     { return "archive" }
func (*archiveCmd) Synopsis() string { return "snapshot the vault under a name, or delete a snapshot" }
func (*archiveCmd) Usage() string {
	return `velo archive [-rm] <name>

  Freezes the whole vault state (capital, envelopes, transactions) under a
  name, silently replacing a snapshot of the same name. With -rm, deletes
  the named snapshot instead.

Usage Examples:
$ velo archive "OCT 2023"
$ velo archive -rm "OCT 2023"
`
}

func (p *archiveCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.remove, "rm", false, "Delete the named archive instead of creating one.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *archiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.remove {
		commit, err := vault.DeleteArchive(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if !confirm(commit.Message(), p.assumeYes) {
			fmt.Fprintln(os.Stderr, "aborted")
			return subcommands.ExitSuccess
		}
		commit.Apply()
		if err := saveVault(s, vault); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("deleted archive %q\n", name)
		return subcommands.ExitSuccess
	}

	if err := vault.CreateArchive(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("archived current state as %q\n", name)
	return subcommands.ExitSuccess
}

type archivesCmd struct{}

func (*archivesCmd) Name() string     { return "archives" }
func (*archivesCmd) Synopsis() string { return "list the named snapshots" }
func (*archivesCmd) Usage() string {
	return `velo archives

  Lists every archive with its creation date and captured capital.
`
}

func (*archivesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *archivesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.ArchivesMarkdown(vault))
	return subcommands.ExitSuccess
}

type restoreCmd struct {
	assumeYes bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the live vault with a named snapshot" }
func (*restoreCmd) Usage() string {
	return `velo restore [-y] <name>

  Overwrites the live capital, envelopes and transactions with the archived
  copies. The archive itself is untouched and can be restored again.
`
}

func (p *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := f.Arg(0)

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	commit, err := vault.RestoreArchive(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("archive %q loaded\n", name)
	return subcommands.ExitSuccess
}
