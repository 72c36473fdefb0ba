package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client. Recalculations are
// expensive to run, so a misbehaving client must not be able to queue
// them faster than the engine drains them.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing r requests per second with
// the given burst per client.
func NewRateLimiter(r float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(r),
		burst:   burst,
	}
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[client] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter.Allow()
}

// Limit rejects requests exceeding the client's budget with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r)) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller. RemoteAddr is already the real
// client address when the RealIP middleware runs first.
func clientKey(r *http.Request) string {
	return r.RemoteAddr
}

// Sweep drops limiters idle for longer than maxIdle so the map does
// not grow without bound.
func (rl *RateLimiter) Sweep(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for client, cl := range rl.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(rl.clients, client)
		}
	}
}

// Janitor sweeps on the given interval until stop is closed. Run it in
// a goroutine next to the HTTP server.
func (rl *RateLimiter) Janitor(stop <-chan struct{}, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rl.Sweep(maxIdle)
		}
	}
}
