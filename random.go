package litterlogic

import (
	"hash/fnv"
	"math/rand"
)

// Source is the random stream the policy draws from. *rand.Rand satisfies
// it, so the environment can share its own generator to make a whole run
// reproducible.
type Source interface {
	Intn(n int) int
}

// DeterministicSeedValue derives a non-zero seed from a root seed and a
// subsystem label.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicSource returns a seeded generator for the given label.
func NewDeterministicSource(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}

func randomDirection(src Source) Direction {
	return Directions[src.Intn(len(Directions))]
}
