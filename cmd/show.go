package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type showCmd struct {
	query string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "dump the live state as JSON, optionally JSONPath-filtered" }
func (*showCmd) Usage() string {
	return `velo show [-q <jsonpath>]

  Prints the live state (capital, derived totals, envelopes, transactions)
  as JSON. -q narrows the output with a JSONPath query.

Usage Examples:
$ velo show -q '$.envelopes[*].name'
$ velo show -q '$.unallocatedCapital'
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "JSONPath query applied to the state document.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	raw, err := velo.StateJSON(vault)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.query == "" {
		fmt.Println(string(raw))
		return subcommands.ExitSuccess
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	value, err := jsonpath.Get(p.query, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid query %q: %v\n", p.query, err)
		return subcommands.ExitUsageError
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
