package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/velovault/velo"
)

type payCmd struct {
	envelope string
	amount   string
	note     string
	app      string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment against an envelope" }
func (*payCmd) Usage() string {
	return `velo pay -e <id|name> -amount <amount> -note <note> [-app <gpay|paytm|phonepe|banking>]

  Records a completed payment: the envelope's balance and limit both shrink
  by the amount, and so does the total capital. The matching payment-app
  deep link is printed; settlement is trusted, never verified.

Usage Examples:
$ velo pay -e Food -amount 500 -note lunch
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.envelope, "e", "", "Envelope id, or its name when unambiguous.")
	f.StringVar(&p.amount, "amount", "", "Payment amount.")
	f.StringVar(&p.note, "note", "", "Reference note (required).")
	f.StringVar(&p.app, "app", "banking", "Payment app for the deep link.")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := velo.ParseMoney(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	app, ok := velo.FindPaymentApp(p.app)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown payment app %q\n", p.app)
		return subcommands.ExitUsageError
	}

	vault, s, err := loadVault()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	env := vault.Ledger.FindEnvelope(p.envelope)
	if env == nil {
		fmt.Fprintf(os.Stderr, "envelope %q does not resolve\n", p.envelope)
		return subcommands.ExitFailure
	}

	tx, err := vault.Ledger.RecordPayment(env.ID, amount, p.note)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveVault(s, vault); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("payment submitted: %s from %s (balance now %s)\n", tx.Amount, env.Name, env.Balance)
	fmt.Printf("dispatch with %s: %s\n", app.Name, app.DeepLink(tx.Amount, tx.Note))
	return subcommands.ExitSuccess
}
