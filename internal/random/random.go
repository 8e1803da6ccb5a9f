package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/partyround/gamecore/internal/random Source

// Source provides the randomness the engines draw on. Injecting it keeps
// imposter picks, speaking orders and word selection reproducible in tests.
type Source interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Perm returns a random permutation of [0, n)
	Perm(n int) []int
}

// Config for the seeded source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// SeededSource implements Source over a seeded math/rand generator
type SeededSource struct {
	random *rand.Rand
}

// New creates a new seeded source
func New(cfg *Config) *SeededSource {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededSource{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (s *SeededSource) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return s.random.Intn(n)
}

// Perm returns a random permutation of [0, n)
func (s *SeededSource) Perm(n int) []int {
	if n < 1 {
		return nil
	}
	return s.random.Perm(n)
}

// PickOne returns a random element of ids using the given source
func PickOne(src Source, ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[src.Intn(len(ids))]
}

// Shuffle returns a shuffled copy of ids using the given source
func Shuffle(src Source, ids []string) []string {
	shuffled := make([]string, len(ids))
	for i, j := range src.Perm(len(ids)) {
		shuffled[i] = ids[j]
	}
	return shuffled
}
