package refnum

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refPattern = regexp.MustCompile(`^CAT-\d{8}-\d{3}$`)

func TestNewMatchesFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		ref := New()
		assert.Regexp(t, refPattern, ref)
	}
}

func TestFromTimeKnownInstant(t *testing.T) {
	// 457ms into the second -> suffix 457
	instant := time.Date(2025, 10, 3, 14, 30, 0, 457*int(time.Millisecond), time.UTC)

	assert.Equal(t, "CAT-20251003-457", FromTime(instant))
}

func TestFromTimeZeroPadsSuffix(t *testing.T) {
	instant := time.Date(2025, 1, 7, 0, 0, 0, 9*int(time.Millisecond), time.UTC)

	ref := FromTime(instant)
	assert.Equal(t, "CAT-20250107-009", ref)
	assert.Regexp(t, refPattern, ref)
}

// Two calls sharing a millisecond-mod-1000 value collide. That is the
// accepted weakness of the scheme; what must hold is the format.
func TestCollidingInstantsStillWellFormed(t *testing.T) {
	a := time.Date(2025, 10, 3, 9, 0, 1, 250*int(time.Millisecond), time.UTC)
	b := time.Date(2025, 10, 3, 17, 45, 2, 250*int(time.Millisecond), time.UTC)

	refA := FromTime(a)
	refB := FromTime(b)

	assert.Equal(t, refA, refB)
	assert.Regexp(t, refPattern, refA)
}
