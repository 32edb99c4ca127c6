package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type incomeCmd struct {
	source    string
	amount    string
	note      string
	assumeYes bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record income into the liquid capital" }
func (*incomeCmd) Usage() string {
	return `velo income -source <source> -amount <amount> [-note <note>] [-y]

  Records a credit: the total capital grows by the amount and a CASH_IN
  entry is appended to the log. No envelope is touched.

Usage Examples:
$ velo income -source Salary -amount 2000
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.source, "source", "", "Source or merchant of the income.")
	f.StringVar(&p.amount, "amount", "", "Income amount.")
	f.StringVar(&p.note, "note", "", "Optional reference note.")
	f.BoolVar(&p.assumeYes, "y", false, "Confirm without prompting.")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := velo.ParseMoney(p.amount)
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

	commit, err := vault.Ledger.RecordIncome(p.source, amount, p.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(commit.Message(), p.assumeYes) {
		fmt.Fprintln(os.Stderr, "aborted")
		return subcommands.ExitSuccess
	}
	tx := commit.Apply()
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("recorded income %s from %s\n", tx.Amount, tx.Merchant)
	return subcommands.ExitSuccess
}
