package syncset

import (
	"sync"

	"github.com/zeusync/listbench/internal/core/list"
)

var _ Set = (*Exclusive)(nil)

// Exclusive serializes every operation, membership checks included, behind a
// single mutex. At most one goroutine is inside the list at any time.
type Exclusive struct {
	mu   sync.Mutex       // Guards list
	list *list.OrderedSet // The wrapped set
}

// NewExclusive creates an Exclusive set around l.
func NewExclusive(l *list.OrderedSet) *Exclusive {
	return &Exclusive{list: l}
}

// Insert adds v under the lock.
func (e *Exclusive) Insert(v int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Insert(v)
}

// Delete removes v under the lock.
func (e *Exclusive) Delete(v int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Delete(v)
}

// Contains checks v under the same lock as writers, so readers serialize
// against each other too.
func (e *Exclusive) Contains(v int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Contains(v)
}

// Values returns an ascending snapshot taken under the lock.
func (e *Exclusive) Values() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Values()
}

// Len returns the number of elements.
func (e *Exclusive) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.list.Len()
}

// Strategy returns StrategyExclusive.
func (e *Exclusive) Strategy() Strategy {
	return StrategyExclusive
}

// Destroy releases every node.
func (e *Exclusive) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list.Destroy()
}
