package snapshot

import "sync/atomic"

// Holder publishes the current snapshot to concurrent readers. Replace swaps
// in a fully-built snapshot; readers holding the previous one keep a
// consistent view until they drop it.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates a holder with an initial snapshot.
func NewHolder(snap *Snapshot) *Holder {
	h := &Holder{}
	h.current.Store(snap)
	return h
}

// Current returns the snapshot in use.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}

// Replace publishes a new snapshot.
func (h *Holder) Replace(snap *Snapshot) {
	h.current.Store(snap)
}
