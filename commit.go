package velo

// Commit is a validated mutation waiting for explicit confirmation.
//
// Operations that need a human gate validate the intent immediately and
// return a Commit; the caller shows Message to the user and, on a yes,
// invokes Apply. Dropping the Commit discards the intent with no state
// change. Validation cannot be skipped because the mutation only exists
// behind a token the operation itself produced.
type Commit[T any] struct {
	message string
	apply   func() T
}

func newCommit[T any](message string, apply func() T) *Commit[T] {
	return &Commit[T]{message: message, apply: apply}
}

// Message describes the mutation about to happen, for the confirmation gate.
func (c *Commit[T]) Message() string { return c.message }

// Apply performs the mutation and returns its result.
func (c *Commit[T]) Apply() T { return c.apply() }
