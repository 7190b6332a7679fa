package health

import "context"

// SourcePinger checks that the document source is reachable.
type SourcePinger interface {
	Ping(ctx context.Context) error
}

// LoadChecker reports whether a complete snapshot is in memory.
type LoadChecker interface {
	Loaded() bool
}
