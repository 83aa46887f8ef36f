package service

import (
	"context"
	"errors"
	"time"

	"github.com/andy/pizzabill/internal/repository"
)

// mock implementations
type mockSnapshotRepo struct {
	data     map[string][]byte
	putErr   error
	getErr   error
	puts     int
	closed   bool
	sessions []string
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{data: map[string][]byte{}}
}

func mockKey(sessionID, key string) string { return sessionID + "|" + key }

func (m *mockSnapshotRepo) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[mockKey(sessionID, key)], nil
}
func (m *mockSnapshotRepo) Put(ctx context.Context, sessionID, key string, payload []byte) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.data[mockKey(sessionID, key)] = append([]byte(nil), payload...)
	return nil
}
func (m *mockSnapshotRepo) DeleteSession(ctx context.Context, sessionID string) error {
	m.sessions = append(m.sessions, sessionID)
	for k := range m.data {
		if len(k) > len(sessionID) && k[:len(sessionID)+1] == sessionID+"|" {
			delete(m.data, k)
		}
	}
	return nil
}
func (m *mockSnapshotRepo) PurgeBefore(ctx context.Context, t time.Time) (int64, error) {
	return 0, nil
}
func (m *mockSnapshotRepo) List(ctx context.Context) ([]repository.SessionInfo, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Close() error {
	m.closed = true
	return nil
}

var errDisk = errors.New("disk full")

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(msg string) { r.messages = append(r.messages, msg) }
