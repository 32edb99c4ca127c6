package velo

import (
	"strconv"
	"time"
)

// Timestamp is an instant persisted as Unix milliseconds, the wire shape of
// the transaction log.
type Timestamp struct {
	time.Time
}

// Now returns the current instant.
func Now() Timestamp { return Timestamp{Time: time.Now()} }

// At wraps a time.Time into a Timestamp.
func At(t time.Time) Timestamp { return Timestamp{Time: t} }

// String renders the instant the way the history screen displays it.
func (t Timestamp) String() string {
	return t.Format("02/01/2006 at 15:04")
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.UnixMilli(ms)
	return nil
}
