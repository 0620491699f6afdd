package models

import "time"

// SnapshotVersion is the current AppState snapshot schema revision.
// Migration between revisions is the persistence adapter's concern,
// not the ledger's.
const SnapshotVersion = 1

// AppState is the whole-ledger snapshot exchanged with the persistence
// adapter. Callers must treat it as a whole-state replace, never a delta
// merge: import is last-writer-wins.
type AppState struct {
	Version      int           `json:"version"`
	ExportedAt   time.Time     `json:"exported_at"`
	User         User          `json:"user"`
	Transactions []Transaction `json:"transactions"`
}
