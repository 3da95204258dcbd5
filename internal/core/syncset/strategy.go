package syncset

import (
	"fmt"
	"strings"
)

// Strategy defines the concurrency discipline applied around the ordered set.
type Strategy uint8

const (
	// StrategyUnsynchronized calls the set directly. Only one worker may use it.
	StrategyUnsynchronized Strategy = iota
	// StrategyExclusive guards every operation with one mutual-exclusion lock.
	StrategyExclusive
	// StrategyReadWrite takes a shared lock for membership checks and an
	// exclusive lock for inserts and deletes.
	StrategyReadWrite
)

// Strategies lists every supported strategy in benchmark order.
var Strategies = []Strategy{StrategyUnsynchronized, StrategyExclusive, StrategyReadWrite}

func (s Strategy) String() string {
	switch s {
	case StrategyUnsynchronized:
		return "serial"
	case StrategyExclusive:
		return "mutex"
	case StrategyReadWrite:
		return "rwlock"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// MaxWorkers returns the largest worker count the strategy tolerates, or 0 when unbounded.
func (s Strategy) MaxWorkers() int {
	if s == StrategyUnsynchronized {
		return 1
	}
	return 0
}

// ParseStrategy maps a name such as "mutex" or "readwrite" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "serial", "unsynchronized", "none":
		return StrategyUnsynchronized, nil
	case "mutex", "exclusive":
		return StrategyExclusive, nil
	case "rwlock", "readwrite", "rw":
		return StrategyReadWrite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
