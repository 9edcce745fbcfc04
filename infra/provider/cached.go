package provider

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/wmazur/kantor/pkg/currency"
	"github.com/wmazur/kantor/pkg/provider"
)

// CachedRateProvider decorates a RateProvider with a per-currency TTL cache.
// Rate lookups are read-only and idempotent, so serving a cached quote is
// safe across accounts and concurrent requests.
type CachedRateProvider struct {
	next   provider.RateProvider
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	entries map[currency.Code]cachedQuote
}

type cachedQuote struct {
	quote     *provider.Quote
	expiresAt time.Time
}

// NewCachedRateProvider creates a caching decorator around next.
func NewCachedRateProvider(
	next provider.RateProvider,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedRateProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedRateProvider{
		next:    next,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		entries: make(map[currency.Code]cachedQuote),
	}
}

// Quote returns the cached quote when fresh, otherwise fetches from the next
// provider and stores the result. Errors are never cached.
func (c *CachedRateProvider) Quote(ctx context.Context, code currency.Code) (*provider.Quote, error) {
	c.mu.RLock()
	entry, ok := c.entries[code]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		c.logger.Debug("quote cache hit", "code", code)
		return entry.quote, nil
	}

	c.logger.Debug("quote cache miss", "code", code)
	quote, err := c.next.Quote(ctx, code)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[code] = cachedQuote{quote: quote, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return quote, nil
}

// Name returns the decorated provider's name.
func (c *CachedRateProvider) Name() string {
	return c.next.Name()
}
