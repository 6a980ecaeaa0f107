// Package latency simulates network latency for mock endpoints. The delay
// source is an injectable Provider so tests can substitute a zero-delay
// implementation without touching the middleware.
package latency

import (
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Default delay bounds: uniform in [200ms, 1200ms).
const (
	DefaultMin = 200 * time.Millisecond
	DefaultMax = 1200 * time.Millisecond
)

// Provider supplies the delay to apply to a request.
type Provider interface {
	Delay() time.Duration
}

// Uniform produces delays uniformly distributed in [Min, Max).
type Uniform struct {
	min time.Duration
	max time.Duration
	mu  sync.Mutex
	rng *rand.Rand
}

// NewUniform creates a Uniform provider over [min, max). Swapped bounds
// are corrected; equal bounds yield a fixed delay.
func NewUniform(min, max time.Duration) *Uniform {
	if min > max {
		min, max = max, min
	}
	return &Uniform{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Delay returns the next random delay.
func (u *Uniform) Delay() time.Duration {
	if u.max == u.min {
		return u.min
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.min + time.Duration(u.rng.Int63n(int64(u.max-u.min)))
}

// Zero is a Provider that never delays. Intended for tests.
type Zero struct{}

// Delay returns 0.
func (Zero) Delay() time.Duration { return 0 }

// Middleware returns middleware that suspends each request for the
// provider's delay before passing it on. The sleep suspends only the
// issuing request; there is no cancellation, so a request that enters the
// delay always completes and produces a response.
func Middleware(p Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if d := p.Delay(); d > 0 {
				time.Sleep(d)
			}
			next.ServeHTTP(w, r)
		})
	}
}
