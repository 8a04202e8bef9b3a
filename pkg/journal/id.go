package journal

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewTaskID generates an opaque, time-ordered task id. Ids created in the
// same instant (multi-date expansion writes a whole batch at once) are kept
// distinct by a random component, re-rolled against the used set.
func NewTaskID(used map[int64]bool) int64 {
	for {
		id := time.Now().UnixMilli()*1000 + rand.Int63n(1000)
		if !used[id] {
			used[id] = true
			return id
		}
	}
}

// NewHighlightID generates an id for a commendation tag.
func NewHighlightID() int64 {
	return time.Now().UnixMilli()
}

// NewRecordID generates the unique identity for a reading, practice, or
// game record. The minute-resolution timestamp label is display-only and
// deliberately not an identity.
func NewRecordID() string {
	return uuid.NewString()
}
