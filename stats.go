package txfifo

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// SnapshotID mints a sortable-by-time correlation id for tagging a Stats
// snapshot in logs, so a sequence of snapshots for the same FIFO can be
// ordered and joined without a wall-clock timestamp column.
func SnapshotID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
