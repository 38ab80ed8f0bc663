package hashing

import (
	"sync"
)

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.Mutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored count for hash at depth.
func (t *ThreadSafePerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records nodes for hash at depth unless the table is full.
func (t *ThreadSafePerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Hits returns the number of successful lookups.
func (t *ThreadSafePerftTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// Reset clears the table.
func (t *ThreadSafePerftTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Reset()
}
