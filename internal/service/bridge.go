package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/andy/pizzabill/internal/domain"
	"github.com/andy/pizzabill/internal/logger"
	"github.com/andy/pizzabill/internal/repository"
	"github.com/rs/zerolog"
)

// DefaultSessionID is used when no session is named
const DefaultSessionID = "default"

var ErrInvalidSession = errors.New("invalid session name")

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// ValidateSessionID checks that a session name is safe to use as a storage scope
func ValidateSessionID(id string) error {
	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidSession, id)
	}
	return nil
}

// Bridge moves the price list between screens.
// Load order: durable snapshot, then the in-process copy, then the defaults.
// While the last durable write has failed, the in-process copy is newer and wins.
type Bridge struct {
	repo      repository.SnapshotRepository
	sessionID string
	key       string
	secondary domain.Catalog
	dirty     bool
	log       zerolog.Logger
}

// NewBridge creates a bridge scoped to one session and snapshot key
func NewBridge(repo repository.SnapshotRepository, sessionID, key string) *Bridge {
	return &Bridge{
		repo:      repo,
		sessionID: sessionID,
		key:       key,
		log:       logger.WithComponent("bridge").With().Str("session", sessionID).Logger(),
	}
}

// SessionID returns the session this bridge is scoped to
func (b *Bridge) SessionID() string {
	return b.sessionID
}

// Save stores the catalog in the in-process copy and then durably.
// The returned error only concerns the durable write.
func (b *Bridge) Save(ctx context.Context, catalog domain.Catalog) error {
	b.secondary = catalog.Clone()

	payload, err := json.Marshal(catalog)
	if err != nil {
		b.log.Error().Err(err).Msg("failed to encode snapshot")
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := b.repo.Put(ctx, b.sessionID, b.key, payload); err != nil {
		b.dirty = true
		b.log.Error().Err(err).Msg("failed to write snapshot")
		return err
	}
	b.dirty = false

	b.log.Debug().Int("entries", len(catalog)).Msg("snapshot saved")
	return nil
}

// Load returns the best available catalog. It never fails.
func (b *Bridge) Load(ctx context.Context) domain.Catalog {
	if b.dirty && b.secondary != nil {
		b.log.Debug().Msg("durable snapshot is stale, using in-process snapshot")
		return b.secondary.Clone()
	}
	if cat, ok := b.loadDurable(ctx); ok {
		return cat
	}
	if b.secondary != nil {
		b.log.Debug().Msg("using in-process snapshot")
		return b.secondary.Clone()
	}
	return domain.DefaultCatalog()
}

func (b *Bridge) loadDurable(ctx context.Context) (domain.Catalog, bool) {
	payload, err := b.repo.Get(ctx, b.sessionID, b.key)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to read snapshot")
		return nil, false
	}
	if payload == nil {
		return nil, false
	}

	var cat domain.Catalog
	if err := json.Unmarshal(payload, &cat); err != nil {
		b.log.Warn().Err(err).Msg("ignoring corrupted snapshot")
		return nil, false
	}
	if cat == nil {
		b.log.Warn().Msg("ignoring null snapshot")
		return nil, false
	}
	if err := cat.Validate(); err != nil {
		b.log.Warn().Err(err).Msg("ignoring invalid snapshot")
		return nil, false
	}
	return cat, true
}

// EndSession forgets every snapshot of the session
func (b *Bridge) EndSession(ctx context.Context) error {
	b.secondary = nil
	b.dirty = false
	if err := b.repo.DeleteSession(ctx, b.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	b.log.Info().Msg("session ended")
	return nil
}
