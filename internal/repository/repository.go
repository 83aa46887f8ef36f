package repository

import (
	"context"
	"time"
)

// SessionInfo describes one stored snapshot
type SessionInfo struct {
	SessionID string
	Key       string
	Size      int
	UpdatedAt time.Time
}

// SnapshotRepository stores opaque snapshots scoped to a session and a key
type SnapshotRepository interface {
	// Get returns nil, nil when no snapshot exists
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID, key string, payload []byte) error
	DeleteSession(ctx context.Context, sessionID string) error
	// PurgeBefore removes every snapshot last written before t
	PurgeBefore(ctx context.Context, t time.Time) (int64, error)
	List(ctx context.Context) ([]SessionInfo, error)
	Close() error
}
