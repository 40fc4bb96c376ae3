// Package refnum derives business reference numbers for new leads.
package refnum

import (
	"fmt"
	"time"
)

// New returns a reference number of the form CAT-YYYYMMDD-SSS, where
// SSS is the last three decimal digits of the current unix-millisecond
// clock. This is the scheme the business already prints on invoices, so
// it is kept as-is: two calls landing on the same millisecond-mod-1000
// value within a day collide. It is a weak-uniqueness scheme, not an
// identifier safe against concurrent intake bursts.
func New() string {
	return FromTime(time.Now())
}

// FromTime derives the reference number for a given instant.
func FromTime(t time.Time) string {
	return fmt.Sprintf("CAT-%04d%02d%02d-%03d", t.Year(), t.Month(), t.Day(), t.UnixMilli()%1000)
}
