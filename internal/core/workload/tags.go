package workload

import "math/rand/v2"

// OperationTag identifies which set operation a workload slot performs.
type OperationTag uint8

const (
	// Member is a read-only membership check.
	Member OperationTag = iota
	// Insert adds the operand to the set.
	Insert
	// Delete removes the operand from the set.
	Delete
)

func (t OperationTag) String() string {
	switch t {
	case Member:
		return "member"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// IsWrite reports whether the tag mutates the set.
func (t OperationTag) IsWrite() bool {
	return t == Insert || t == Delete
}

// Counts converts fractions of total into operation counts, truncating toward zero.
func Counts(total int, insertFrac, deleteFrac float64) (inserts, deletes int) {
	return int(insertFrac * float64(total)), int(deleteFrac * float64(total))
}

// GenerateTags fills a sequence of length total with inserts Insert tags, then
// deletes Delete tags, then Member tags for the remainder, and shuffles it.
// Counts larger than what is left are clipped, so later kinds are starved
// when the mix is over-subscribed.
func GenerateTags(total, inserts, deletes int, rng *rand.Rand) []OperationTag {
	if total <= 0 {
		return []OperationTag{}
	}

	tags := make([]OperationTag, total)
	for i := range tags {
		switch {
		case i < inserts:
			tags[i] = Insert
		case i < inserts+deletes:
			tags[i] = Delete
		default:
			tags[i] = Member
		}
	}

	Shuffle(tags, rng)
	return tags
}

// Shuffle applies a Fisher-Yates permutation in place.
func Shuffle(tags []OperationTag, rng *rand.Rand) {
	for i := len(tags) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		tags[i], tags[j] = tags[j], tags[i]
	}
}

// Tally counts the tags of each kind.
func Tally(tags []OperationTag) (inserts, deletes, members int) {
	for _, t := range tags {
		switch t {
		case Insert:
			inserts++
		case Delete:
			deletes++
		default:
			members++
		}
	}
	return
}
