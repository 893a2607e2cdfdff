package repo

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

// MemoryLevelRepo keeps level records in process memory. It is used when no
// MongoDB URI is configured.
type MemoryLevelRepo struct {
	records map[string]i.LevelRecord
	sync.RWMutex
}

func NewMemoryLevelRepo() *MemoryLevelRepo {
	return &MemoryLevelRepo{records: make(map[string]i.LevelRecord)}
}

func (m *MemoryLevelRepo) Record(_ context.Context, r i.LevelRecord) error {
	m.Lock()
	defer m.Unlock()
	m.records[r.SessionID] = r
	return nil
}

func (m *MemoryLevelRepo) BySession(_ context.Context, sessionID string) (*i.LevelRecord, error) {
	m.RLock()
	defer m.RUnlock()
	r, ok := m.records[sessionID]
	if !ok {
		return nil, i.ErrLevelNotFound
	}
	return &r, nil
}
