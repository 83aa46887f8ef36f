package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andy/pizzabill/internal/db"
)

// SnapshotRepo is a SQLite implementation of SnapshotRepository
type SnapshotRepo struct {
	db  *db.DB
	now func() time.Time
}

// NewSnapshotRepo creates a new SnapshotRepo
func NewSnapshotRepo(database *db.DB) *SnapshotRepo {
	return &SnapshotRepo{db: database, now: time.Now}
}

// Get retrieves a snapshot, or returns nil if none is stored
func (r *SnapshotRepo) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	query := `
		SELECT payload
		FROM session_snapshots
		WHERE session_id = ? AND snapshot_key = ?
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, sessionID, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return payload, nil
}

// Put saves a snapshot (insert or replace)
func (r *SnapshotRepo) Put(ctx context.Context, sessionID, key string, payload []byte) error {
	query := `
		INSERT OR REPLACE INTO session_snapshots (session_id, snapshot_key, payload, updated_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, sessionID, key, payload, formatTime(r.now()))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// DeleteSession removes every snapshot of a session
func (r *SnapshotRepo) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM session_snapshots WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// PurgeBefore removes snapshots last written before t
func (r *SnapshotRepo) PurgeBefore(ctx context.Context, t time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM session_snapshots WHERE updated_at < ?", formatTime(t))
	if err != nil {
		return 0, fmt.Errorf("failed to purge snapshots: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// List returns all stored snapshots, most recent first
func (r *SnapshotRepo) List(ctx context.Context) ([]SessionInfo, error) {
	query := `
		SELECT session_id, snapshot_key, length(payload), updated_at
		FROM session_snapshots
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]SessionInfo, 0)
	for rows.Next() {
		var info SessionInfo
		var updatedAt string

		if err := rows.Scan(&info.SessionID, &info.Key, &info.Size, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if info.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return infos, nil
}

// Close is a no-op; the database is owned by the app
func (r *SnapshotRepo) Close() error {
	return nil
}
