package sighting

import "github.com/kailas-cloud/isstracker/internal/domain/dataset"

// SnapshotReader provides the current data snapshot.
type SnapshotReader interface {
	Snapshot() *dataset.Dataset
}
