package harness

import (
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/workload"
)

// Stats counts executed operations and how many of them took effect.
// Each worker keeps its own copy; copies are merged after the run.
type Stats struct {
	Inserts    uint64 // Insert operations executed
	InsertHits uint64 // Inserts that added a new value
	Deletes    uint64 // Delete operations executed
	DeleteHits uint64 // Deletes that removed a value
	Members    uint64 // Membership checks executed
	MemberHits uint64 // Membership checks that found the value
}

// Record accounts for one operation and its outcome.
func (s *Stats) Record(tag workload.OperationTag, ok bool) {
	var hit uint64
	if ok {
		hit = 1
	}

	switch tag {
	case workload.Insert:
		s.Inserts++
		s.InsertHits += hit
	case workload.Delete:
		s.Deletes++
		s.DeleteHits += hit
	default:
		s.Members++
		s.MemberHits += hit
	}
}

// Merge adds other into s.
func (s *Stats) Merge(other Stats) {
	s.Inserts += other.Inserts
	s.InsertHits += other.InsertHits
	s.Deletes += other.Deletes
	s.DeleteHits += other.DeleteHits
	s.Members += other.Members
	s.MemberHits += other.MemberHits
}

// Total is the number of executed operations.
func (s Stats) Total() uint64 {
	return s.Inserts + s.Deletes + s.Members
}

// NetGrowth is the change in set size caused by the run.
func (s Stats) NetGrowth() int64 {
	return int64(s.InsertHits) - int64(s.DeleteHits)
}

func (s Stats) fields() []log.Field {
	return []log.Field{
		log.Uint64("inserts", s.Inserts),
		log.Uint64("insert_hits", s.InsertHits),
		log.Uint64("deletes", s.Deletes),
		log.Uint64("delete_hits", s.DeleteHits),
		log.Uint64("members", s.Members),
		log.Uint64("member_hits", s.MemberHits),
	}
}
