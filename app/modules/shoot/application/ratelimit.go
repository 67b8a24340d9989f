package shootservice

import (
	"sync"

	"golang.org/x/time/rate"
)

// importLimiter tracks a per-submitter token bucket for score-sheet imports.
type importLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newImportLimiter(perMinute int) *importLimiter {
	if perMinute <= 0 {
		perMinute = 6
	}
	return &importLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (l *importLimiter) allow(submitter string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[submitter]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[submitter] = lim
	}
	return lim.Allow()
}
