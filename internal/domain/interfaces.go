package domain

// SnapshotStore persists a bank snapshot to durable storage.
//
// Save, Load and Clear are independent, idempotent operations; no call
// ordering is enforced by the store itself.
type SnapshotStore interface {
	// Save writes the snapshot, replacing any prior one.
	Save(s Snapshot) error
	// Load reads the stored snapshot. A missing store is not an error:
	// it reports ok == false with a nil error.
	Load() (s Snapshot, ok bool, err error)
	// Clear removes the stored snapshot; clearing an absent store succeeds.
	Clear() error
}
