package claim

import (
	"context"
	"sync"
)

// MemoryLedger is the demo-mode Ledger: rows live in process memory and are
// lost on restart. It is only ever selected explicitly through
// configuration, never as a fallback for an unreachable backend.
type MemoryLedger struct {
	mu   sync.Mutex
	rows []Record
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (m *MemoryLedger) ReadAll(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *MemoryLedger) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, rec)
	return nil
}
