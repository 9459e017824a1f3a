package model

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// entropy is shared and locked so ids generated in sequence are monotonically
// increasing within the same millisecond.
var entropy = ulid.Monotonic(rand.Reader, 0)

var entropyReader = &ulid.LockedMonotonicReader{MonotonicReader: entropy}

// NewID returns a 26-character, lexicographically sortable, time-ordered
// identifier. Ids are assigned once at creation time and never regenerated.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropyReader).String()
}
