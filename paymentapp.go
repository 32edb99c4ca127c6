package velo

import (
	"fmt"
	"net/url"
)

// PaymentApp describes an external payment application reachable through a
// deep-link scheme. The vault only emits the link; it never awaits or
// verifies settlement.
type PaymentApp struct {
	ID     string
	Name   string
	Scheme string
}

// PaymentApps lists the supported payment applications.
var PaymentApps = []PaymentApp{
	{ID: "gpay", Name: "Google Pay", Scheme: "tez://"},
	{ID: "paytm", Name: "Paytm", Scheme: "paytmmp://"},
	{ID: "phonepe", Name: "PhonePe", Scheme: "phonepe://"},
	{ID: "banking", Name: "Banking App", Scheme: "upi://"},
}

// FindPaymentApp returns the payment app with this id.
func FindPaymentApp(id string) (PaymentApp, bool) {
	for _, app := range PaymentApps {
		if app.ID == id {
			return app, true
		}
	}
	return PaymentApp{}, false
}

// DeepLink builds the UPI-style payment link for an amount and note.
// A placeholder payee address keeps stricter apps happy.
func (a PaymentApp) DeepLink(amount Money, note string) string {
	return fmt.Sprintf("%spay?pa=paytm@upi&am=%s&tn=%s", a.Scheme, amount.Plain(), url.QueryEscape(note))
}
