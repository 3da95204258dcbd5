package workload

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

const (
	// MaxValue is the largest operand the generator produces.
	MaxValue = 65535
	// ValueRange is the number of distinct operands.
	ValueRange = MaxValue + 1
)

// Operands generates uniform operands in [0, MaxValue]. It is not safe for
// concurrent use; every worker owns its own generator.
type Operands struct {
	rng *rand.Rand
}

// NewOperands returns a generator seeded with seed.
func NewOperands(seed uint64) *Operands {
	return &Operands{rng: NewRand(seed)}
}

// Next returns the next operand.
func (o *Operands) Next() int {
	return o.rng.IntN(ValueRange)
}

// NewRand builds a PCG-backed generator from a single seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DeriveSeed mixes a run level seed with a stream index so every worker draws
// from an independent generator.
func DeriveSeed(runSeed uint64, stream int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], runSeed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(stream))
	return xxhash.Sum64(buf[:])
}
