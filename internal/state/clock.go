package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Entry IDs combine a per-process session ID with a monotonic sequence, so
// they are unique within a run and order entries by insertion.
var (
	sessionID = uuid.NewString()
	sequence  uint64
)

func nextSequence() uint64 {
	return atomic.AddUint64(&sequence, 1)
}

func entryID(seq uint64) string {
	return fmt.Sprintf("shape-%s-%d", sessionID[:8], seq)
}

// SessionID identifies this process run.
func SessionID() string { return sessionID }
