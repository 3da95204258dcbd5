package syncset

import "github.com/zeusync/listbench/internal/core/list"

var _ Set = (*Unsynchronized)(nil)

// Unsynchronized forwards every call to the list with no locking.
// It is the single-threaded baseline and must not be shared between goroutines.
type Unsynchronized struct {
	list *list.OrderedSet
}

// NewUnsynchronized creates an Unsynchronized set around l.
func NewUnsynchronized(l *list.OrderedSet) *Unsynchronized {
	return &Unsynchronized{list: l}
}

func (u *Unsynchronized) Insert(v int) bool   { return u.list.Insert(v) }
func (u *Unsynchronized) Delete(v int) bool   { return u.list.Delete(v) }
func (u *Unsynchronized) Contains(v int) bool { return u.list.Contains(v) }
func (u *Unsynchronized) Values() []int       { return u.list.Values() }
func (u *Unsynchronized) Len() int            { return u.list.Len() }
func (u *Unsynchronized) Destroy()            { u.list.Destroy() }

func (u *Unsynchronized) Strategy() Strategy {
	return StrategyUnsynchronized
}
