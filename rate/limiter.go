// Package rate throttles requests to court websites per host using
// golang.org/x/time/rate token buckets.
package rate

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/causelist"
	"golang.org/x/time/rate"
)

// DefaultRPS is the default number of link downloads per second per host.
const DefaultRPS = 2

var _ causelist.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host. Hosts are throttled
// independently of each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second to
// each host with no bursting. A non-positive rps disables throttling.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    1,
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = l
	}
	return l
}

// Host returns the lower-cased host a link points at, or "" for links without one such
// as root-relative paths.
func Host(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
