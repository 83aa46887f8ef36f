package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
)

const pebbleKeyPrefix = "session/"

// PebbleSnapshotRepo implements SnapshotRepository using PebbleDB
type PebbleSnapshotRepo struct {
	db  *pebble.DB
	now func() time.Time
}

type pebbleEnvelope struct {
	UpdatedAt time.Time `json:"updated_at"`
	Payload   []byte    `json:"payload"`
}

// NewPebbleSnapshotRepo opens (or creates) a pebble store in dir
func NewPebbleSnapshotRepo(dir string) (*PebbleSnapshotRepo, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleSnapshotRepo{db: d, now: time.Now}, nil
}

func (p *PebbleSnapshotRepo) Close() error { return p.db.Close() }

func pebbleKey(sessionID, key string) []byte {
	return []byte(pebbleKeyPrefix + sessionID + "/" + key)
}

func splitPebbleKey(k []byte) (sessionID, key string) {
	rest := strings.TrimPrefix(string(k), pebbleKeyPrefix)
	sessionID, key, _ = strings.Cut(rest, "/")
	return sessionID, key
}

// prefixUpperBound returns the smallest key greater than every key with prefix
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (p *PebbleSnapshotRepo) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	v, closer, err := p.db.Get(pebbleKey(sessionID, key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("pebble get: %w", err)
	}
	defer closer.Close()

	var env pebbleEnvelope
	if err := json.Unmarshal(v, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return env.Payload, nil
}

func (p *PebbleSnapshotRepo) Put(ctx context.Context, sessionID, key string, payload []byte) error {
	bytes, err := json.Marshal(pebbleEnvelope{UpdatedAt: p.now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := p.db.Set(pebbleKey(sessionID, key), bytes, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set: %w", err)
	}
	return nil
}

func (p *PebbleSnapshotRepo) DeleteSession(ctx context.Context, sessionID string) error {
	prefix := []byte(pebbleKeyPrefix + sessionID + "/")
	if err := p.db.DeleteRange(prefix, prefixUpperBound(prefix), pebble.Sync); err != nil {
		return fmt.Errorf("pebble delete range: %w", err)
	}
	return nil
}

// PurgeBefore collects stale keys first, then deletes them in one batch
func (p *PebbleSnapshotRepo) PurgeBefore(ctx context.Context, t time.Time) (int64, error) {
	var stale [][]byte
	err := p.scan(func(k []byte, env pebbleEnvelope) error {
		if env.UpdatedAt.Before(t) {
			stale = append(stale, k)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	wb := p.db.NewBatch()
	defer wb.Close()
	for _, k := range stale {
		if err := wb.Delete(k, nil); err != nil {
			return 0, fmt.Errorf("batch delete: %w", err)
		}
	}
	if err := wb.Commit(pebble.Sync); err != nil {
		return 0, fmt.Errorf("batch commit: %w", err)
	}
	return int64(len(stale)), nil
}

func (p *PebbleSnapshotRepo) List(ctx context.Context) ([]SessionInfo, error) {
	infos := make([]SessionInfo, 0)
	err := p.scan(func(k []byte, env pebbleEnvelope) error {
		sid, key := splitPebbleKey(k)
		infos = append(infos, SessionInfo{
			SessionID: sid,
			Key:       key,
			Size:      len(env.Payload),
			UpdatedAt: env.UpdatedAt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// most recent first, matching the SQLite ordering
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos, nil
}

func (p *PebbleSnapshotRepo) scan(fn func(k []byte, env pebbleEnvelope) error) error {
	prefix := []byte(pebbleKeyPrefix)
	it, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return fmt.Errorf("pebble iter: %w", err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		k := append([]byte(nil), it.Key()...)
		var env pebbleEnvelope
		if err := json.Unmarshal(it.Value(), &env); err != nil {
			return fmt.Errorf("decode envelope %s: %w", k, err)
		}
		if err := fn(k, env); err != nil {
			return err
		}
	}
	return it.Error()
}
