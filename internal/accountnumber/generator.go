// Package accountnumber issues unique account numbers for the lifetime
// of the process.
package accountnumber

import (
	"fmt"
	"math/rand"
	"sync"
)

type Generator interface {
	Next() (int, error)
}

// Pooled draws from a pre-shuffled pool covering the configured range,
// so numbers are unique by construction rather than probabilistically.
// The pool for the default 100000-999999 range is 900k ints, which is a
// few megabytes and allocated once.
type Pooled struct {
	mu   sync.Mutex
	pool []int
	next int
}

// NewPooled builds a generator over the inclusive range [min, max].
func NewPooled(min, max int) (*Pooled, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("invalid account number range %d-%d", min, max)
	}

	pool := rand.Perm(max - min + 1)
	for i := range pool {
		pool[i] += min
	}

	return &Pooled{pool: pool}, nil
}

func (g *Pooled) Next() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next >= len(g.pool) {
		return 0, fmt.Errorf("account number pool exhausted after %d numbers", len(g.pool))
	}

	n := g.pool[g.next]
	g.next++
	return n, nil
}
