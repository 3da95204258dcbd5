package syncset

import (
	"sync"

	"github.com/zeusync/listbench/internal/core/list"
)

var _ Set = (*ReadWrite)(nil)

// ReadWrite lets any number of membership checks run together while inserts
// and deletes exclude every other operation.
type ReadWrite struct {
	mu   sync.RWMutex     // Shared for Contains, exclusive for Insert and Delete
	list *list.OrderedSet // The wrapped set
}

// NewReadWrite creates a ReadWrite set around l.
func NewReadWrite(l *list.OrderedSet) *ReadWrite {
	return &ReadWrite{list: l}
}

// Insert adds v holding the write lock.
func (r *ReadWrite) Insert(v int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list.Insert(v)
}

// Delete removes v holding the write lock.
func (r *ReadWrite) Delete(v int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list.Delete(v)
}

// Contains checks v holding the read lock.
func (r *ReadWrite) Contains(v int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list.Contains(v)
}

// Values returns an ascending snapshot taken under the read lock.
func (r *ReadWrite) Values() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list.Values()
}

// Len returns the number of elements.
func (r *ReadWrite) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list.Len()
}

// Strategy returns StrategyReadWrite.
func (r *ReadWrite) Strategy() Strategy {
	return StrategyReadWrite
}

// Destroy releases every node.
func (r *ReadWrite) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list.Destroy()
}
