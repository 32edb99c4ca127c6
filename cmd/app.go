// Package cmd implements the CLI application to manage the vault.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/velovault/velo"
	"github.com/velovault/velo/store"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&newCmd{},
	&editCmd{},
	&deleteCmd{},
	&payCmd{},
	&incomeCmd{},
	&capitalCmd{},
	&historyCmd{},
	&archiveCmd{},
	&archivesCmd{},
	&restoreCmd{},
	&showCmd{},
	&resetCmd{},
}

// As a CLI application the process is short lived, so a global flag for the
// database location is fine.
var dataPath = flag.String("data", "", "Path to the vault database (default $VELO_DB or ~/.velo/velo.db)")

func resolveDataPath() string {
	if *dataPath != "" {
		return *dataPath
	}
	if env := os.Getenv("VELO_DB"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "velo.db"
	}
	return filepath.Join(home, ".velo", "velo.db")
}

// openStore opens the blob database backing the vault.
func openStore() (*store.SQLite, error) {
	return store.OpenSQLite(resolveDataPath())
}

// loadVault opens the store and reconstructs the vault from it. The returned
// store must be closed by the caller.
func loadVault() (*velo.Vault, *store.SQLite, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open vault database: %w", err)
	}
	return velo.Load(s), s, nil
}

// saveVault persists every blob of the vault.
func saveVault(s store.Store, v *velo.Vault) error {
	if err := velo.Save(s, v); err != nil {
		return fmt.Errorf("could not persist vault: %w", err)
	}
	return nil
}

// confirm gates a destructive or capital-affecting mutation behind a yes/no
// prompt. assumeYes skips the prompt (the -y flag).
func confirm(message string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// printMarkdown renders markdown for the terminal. On rendering trouble it
// falls back to the raw markdown.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "dark")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// Completion describes the CLI to the shell completion engine.
func Completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(Commands))
	for _, c := range Commands {
		flags := make(map[string]complete.Predictor)
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			flags[f.Name] = predict.Something
		})
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data": predict.Files("*.db"),
		},
	}
}
