package pagemix

import "github.com/pagemix/pagemix/lib/snapshot"

// Snapshotter is an alias for snapshot.Encoder for convenience.
type Snapshotter = snapshot.Encoder

// NewSnapshotter creates a snapshot encoder with the given signing key.
func NewSnapshotter(key []byte) *Snapshotter {
	return snapshot.NewEncoder(key)
}

// Snapshot encodes a merged page's data for a client round-trip.
func Snapshot(enc *Snapshotter, p *Page) (string, error) {
	s, err := enc.Encode(p.Data)
	return s, wrapSnapshotError(err)
}

// RestoreData decodes a snapshot back into a data mapping.
func RestoreData(enc *Snapshotter, encoded string) (map[string]any, error) {
	data, err := enc.Decode(encoded)
	return data, wrapSnapshotError(err)
}
