package list

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedSet(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var s OrderedSet

		require.Zero(t, s.Len())
		require.False(t, s.Contains(0))
		require.False(t, s.Delete(0))
		require.True(t, s.Sorted())
		require.Empty(t, s.Values())
	})

	t.Run("Insert Keeps Order", func(t *testing.T) {
		s := New()
		for _, v := range []int{5, 1, 9, 3, 7, 0, 65535} {
			require.True(t, s.Insert(v))
		}

		require.Equal(t, []int{0, 1, 3, 5, 7, 9, 65535}, s.Values())
		require.Equal(t, 7, s.Len())
		require.True(t, s.Sorted())
	})

	t.Run("Insert Idempotence", func(t *testing.T) {
		s := New()
		require.False(t, s.Contains(42))

		require.True(t, s.Insert(42))
		require.True(t, s.Contains(42))

		require.False(t, s.Insert(42))
		require.Equal(t, []int{42}, s.Values())
		require.Equal(t, 1, s.Len())
	})

	t.Run("Delete", func(t *testing.T) {
		s := New()
		for _, v := range []int{10, 20, 30} {
			s.Insert(v)
		}

		require.False(t, s.Delete(15))
		require.Equal(t, []int{10, 20, 30}, s.Values())

		require.True(t, s.Delete(10)) // head
		require.True(t, s.Delete(30)) // tail
		require.False(t, s.Contains(10))
		require.False(t, s.Contains(30))
		require.Equal(t, []int{20}, s.Values())

		require.True(t, s.Delete(20))
		require.Zero(t, s.Len())
		require.False(t, s.Delete(20))
	})

	t.Run("Contains Stops Early", func(t *testing.T) {
		s := New()
		for _, v := range []int{2, 4, 6} {
			s.Insert(v)
		}

		require.False(t, s.Contains(1))
		require.False(t, s.Contains(3))
		require.True(t, s.Contains(6))
		require.False(t, s.Contains(7))
	})

	t.Run("Destroy", func(t *testing.T) {
		s := New()
		for v := range 100 {
			s.Insert(v)
		}

		s.Destroy()
		require.Zero(t, s.Len())
		require.Empty(t, s.Values())

		require.True(t, s.Insert(1))
		require.Equal(t, []int{1}, s.Values())
	})

	t.Run("All Early Break", func(t *testing.T) {
		s := New()
		for v := range 10 {
			s.Insert(v)
		}

		var seen []int
		for v := range s.All() {
			if v == 3 {
				break
			}
			seen = append(seen, v)
		}
		require.Equal(t, []int{0, 1, 2}, seen)
	})
}

func TestOrderedSet_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := New()
	ref := make(map[int]struct{})

	for range 20000 {
		v := rng.IntN(512)
		switch rng.IntN(3) {
		case 0:
			_, had := ref[v]
			require.Equal(t, !had, s.Insert(v))
			ref[v] = struct{}{}
		case 1:
			_, had := ref[v]
			require.Equal(t, had, s.Delete(v))
			delete(ref, v)
		default:
			_, had := ref[v]
			require.Equal(t, had, s.Contains(v))
		}
	}

	require.True(t, s.Sorted())
	require.Equal(t, len(ref), s.Len())
	for v := range s.All() {
		require.Contains(t, ref, v)
	}
}

func BenchmarkOrderedSet_Contains(b *testing.B) {
	s := New()
	for v := 0; v < 2000; v += 2 {
		s.Insert(v)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(i % 2000)
	}
}
