package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	cases := []struct {
		name         string
		total        int
		ins, del     float64
		wantI, wantD int
	}{
		{"Even Split", 1000, 0.3, 0.2, 300, 200},
		{"Truncates", 10, 0.25, 0.25, 2, 2},
		{"Zero Total", 0, 0.5, 0.5, 0, 0},
		{"Read Only", 250, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, d := Counts(tc.total, tc.ins, tc.del)
			require.Equal(t, tc.wantI, i)
			require.Equal(t, tc.wantD, d)
		})
	}
}

func TestGenerateTags(t *testing.T) {
	t.Run("Mix Preserved", func(t *testing.T) {
		tags := GenerateTags(1000, 300, 200, NewRand(7))
		require.Len(t, tags, 1000)

		ins, del, mem := Tally(tags)
		require.Equal(t, 300, ins)
		require.Equal(t, 200, del)
		require.Equal(t, 500, mem)
	})

	t.Run("Shuffled", func(t *testing.T) {
		tags := GenerateTags(1000, 500, 0, NewRand(7))

		// the unshuffled prefix would be all inserts
		ins, _, _ := Tally(tags[:500])
		require.Less(t, ins, 500)
	})

	t.Run("Over Subscribed", func(t *testing.T) {
		tags := GenerateTags(10, 8, 8, NewRand(1))

		ins, del, mem := Tally(tags)
		require.Equal(t, 8, ins)
		require.Equal(t, 2, del)
		require.Zero(t, mem)
	})

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, GenerateTags(0, 0, 0, NewRand(1)))
		require.Empty(t, GenerateTags(-3, 0, 0, NewRand(1)))
	})

	t.Run("Deterministic For Seed", func(t *testing.T) {
		a := GenerateTags(64, 20, 20, NewRand(99))
		b := GenerateTags(64, 20, 20, NewRand(99))
		require.Equal(t, a, b)
	})
}

func TestOperationTag(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "delete", Delete.String())
	assert.Equal(t, "member", Member.String())
	assert.Equal(t, "unknown", OperationTag(42).String())

	assert.True(t, Insert.IsWrite())
	assert.True(t, Delete.IsWrite())
	assert.False(t, Member.IsWrite())
}

func TestOperands(t *testing.T) {
	t.Run("Range", func(t *testing.T) {
		o := NewOperands(3)
		lo, hi := ValueRange, -1
		for range 200000 {
			v := o.Next()
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, MaxValue)
			lo, hi = min(lo, v), max(hi, v)
		}
		// 200k draws over 64k values reach both ends with overwhelming probability
		assert.Less(t, lo, 16)
		assert.Greater(t, hi, MaxValue-16)
	})

	t.Run("Independent Streams", func(t *testing.T) {
		s0 := DeriveSeed(42, 0)
		s1 := DeriveSeed(42, 1)
		require.NotEqual(t, s0, s1)
		require.Equal(t, s0, DeriveSeed(42, 0))
		require.NotEqual(t, s0, DeriveSeed(43, 0))

		a, b := NewOperands(s0), NewOperands(s1)
		same := 0
		for range 100 {
			if a.Next() == b.Next() {
				same++
			}
		}
		require.Less(t, same, 10)
	})
}
