package velo

// defaultColor is assigned to envelopes created without an explicit color.
const defaultColor = "#3b82f6"

// Envelope is a named budget bucket holding a share of the total capital.
//
// Limit is the capital allocated to the envelope, Balance the capital still
// in it. A payment decrements both by the same amount, so they move in
// lockstep: spending from an envelope shrinks its allocation, it does not
// drain the balance toward a fixed limit.
type Envelope struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Money  `json:"balance"`
	Limit   Money  `json:"limit"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
}

// clone returns an independent copy.
func (e *Envelope) clone() *Envelope {
	c := *e
	return &c
}

// EnvelopePatch carries the fields an edit intent wants to change. Nil
// fields are left untouched. Balance is deliberately absent: editing never
// reconciles it, even when the limit shrinks below it.
type EnvelopePatch struct {
	Name  *string
	Limit *Money
	Color *string
	Icon  *string
}
