package list

import "iter"

// node is a single link of the ordered chain. Nodes are owned by their predecessor
// (or by the set head) and never escape the set.
type node struct {
	value int
	next  *node
}

// OrderedSet is a strictly ascending, duplicate-free singly linked set of integers.
// It has no internal synchronization: callers serialize access.
// The zero value is an empty set ready to use.
type OrderedSet struct {
	head *node
	size int
}

// New returns an empty OrderedSet.
func New() *OrderedSet {
	return &OrderedSet{}
}

// Insert links v into its ordered position. It returns false and leaves the set
// unchanged when v is already present.
func (s *OrderedSet) Insert(v int) bool {
	var prev *node
	cur := s.head
	for cur != nil && cur.value < v {
		prev = cur
		cur = cur.next
	}

	if cur != nil && cur.value == v {
		return false
	}

	n := &node{value: v, next: cur}
	if prev == nil {
		s.head = n
	} else {
		prev.next = n
	}
	s.size++

	return true
}

// Delete unlinks the node holding v. It returns false when v is absent.
func (s *OrderedSet) Delete(v int) bool {
	var prev *node
	cur := s.head
	for cur != nil && cur.value < v {
		prev = cur
		cur = cur.next
	}

	if cur == nil || cur.value != v {
		return false
	}

	if prev == nil {
		s.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next = nil
	s.size--

	return true
}

// Contains reports whether v is in the set. The scan stops at the first node
// whose value is not less than v.
func (s *OrderedSet) Contains(v int) bool {
	cur := s.head
	for cur != nil && cur.value < v {
		cur = cur.next
	}
	return cur != nil && cur.value == v
}

// Len returns the number of elements.
func (s *OrderedSet) Len() int {
	return s.size
}

// All yields the elements in ascending order.
func (s *OrderedSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for cur := s.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in ascending order.
func (s *OrderedSet) Values() []int {
	out := make([]int, 0, s.size)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Sorted reports whether every adjacent pair of nodes is strictly ascending.
func (s *OrderedSet) Sorted() bool {
	if s.head == nil {
		return true
	}
	for cur := s.head; cur.next != nil; cur = cur.next {
		if cur.value >= cur.next.value {
			return false
		}
	}
	return true
}

// Destroy releases every node. The set is empty afterwards.
func (s *OrderedSet) Destroy() {
	cur := s.head
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
	s.head = nil
	s.size = 0
}
