package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/pizzabill/internal/logger"
	"github.com/andy/pizzabill/internal/repository"
)

// PurgeIdleSessions drops snapshots not written within maxAge.
// A zero or negative maxAge disables purging.
func PurgeIdleSessions(ctx context.Context, repo repository.SnapshotRepository, maxAge time.Duration, now time.Time) (int64, error) {
	if maxAge <= 0 {
		return 0, nil
	}

	n, err := repo.PurgeBefore(ctx, now.Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to purge idle sessions: %w", err)
	}
	if n > 0 {
		log := logger.WithComponent("session")
		log.Info().Int64("snapshots", n).Dur("max_age", maxAge).Msg("purged idle sessions")
	}
	return n, nil
}
