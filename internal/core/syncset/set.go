package syncset

import (
	"errors"
	"fmt"

	"github.com/zeusync/listbench/internal/core/list"
	"github.com/zeusync/listbench/internal/core/workload"
)

var (
	// ErrUnknownStrategy is returned for a strategy name or value with no implementation.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrNilList is returned when New is handed no list to wrap.
	ErrNilList = errors.New("nil list")
)

// Set is an ordered set bundled with its locking discipline. Workers share one
// Set by reference; how safe that is depends on Strategy.
type Set interface {
	Insert(v int) bool
	Delete(v int) bool
	Contains(v int) bool

	// Values returns a consistent ascending snapshot.
	Values() []int
	Len() int

	Strategy() Strategy

	// Destroy releases every node. It must only be called once all workers returned.
	Destroy()
}

// New wraps l with the discipline named by strategy. The returned Set takes
// ownership of l; callers must not touch l afterwards.
func New(strategy Strategy, l *list.OrderedSet) (Set, error) {
	if l == nil {
		return nil, ErrNilList
	}

	switch strategy {
	case StrategyUnsynchronized:
		return NewUnsynchronized(l), nil
	case StrategyExclusive:
		return NewExclusive(l), nil
	case StrategyReadWrite:
		return NewReadWrite(l), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}

// Do dispatches one tagged operation on s and returns its outcome.
func Do(s Set, tag workload.OperationTag, v int) bool {
	switch tag {
	case workload.Insert:
		return s.Insert(v)
	case workload.Delete:
		return s.Delete(v)
	default:
		return s.Contains(v)
	}
}
