package detect

import (
	"math/rand"
	"sync"
)

// Sampler yields independent uniform draws in [0, 1). The synthetic
// perplexity values are jittered through it, so swapping the sampler is how
// callers pin otherwise non-deterministic output.
type Sampler interface {
	Float64() float64
}

// defaultSampler draws from the process-global source, which is safe for
// concurrent use across request goroutines.
type defaultSampler struct{}

func (defaultSampler) Float64() float64 { return rand.Float64() }

// SeededSampler is a deterministic Sampler: equal seeds produce equal draw
// sequences. A mutex guards the underlying source, which is not safe for
// concurrent use on its own.
type SeededSampler struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeededSampler(seed int64) *SeededSampler {
	return &SeededSampler{r: rand.New(rand.NewSource(seed))}
}

func (s *SeededSampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
