package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

// MemoryTableStore keeps the named tables in process memory. It backs
// local development when DATABASE_URL is unset and doubles as the
// injectable fake in tests. The mutex serializes all calls, so a single
// process doesn't exhibit the upsert read-then-write race.
type MemoryTableStore struct {
	mu     sync.Mutex
	tables map[string][][]string
}

func NewMemoryTableStore(tables ...string) *MemoryTableStore {
	m := &MemoryTableStore{tables: make(map[string][][]string, len(tables))}
	for _, t := range tables {
		m.tables[t] = [][]string{}
	}
	return m
}

func (m *MemoryTableStore) GetRows(_ context.Context, table string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}

	// Copy so callers can't mutate stored rows behind the lock.
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemoryTableStore) AppendRow(_ context.Context, table string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}
	m.tables[table] = append(rows, append([]string(nil), row...))
	return nil
}

func (m *MemoryTableStore) UpdateRow(_ context.Context, table string, index int, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.tables[table]
	if !ok {
		return fmt.Errorf("%w: %q", usecase.ErrTableNotFound, table)
	}
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("no row at index %d of %q", index, table)
	}
	rows[index] = append([]string(nil), row...)
	return nil
}
