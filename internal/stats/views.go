// Package stats tracks marketing page-view counters in Redis.
// Counters are best-effort presentation data: when Redis is not configured
// the server runs with a no-op counter and the stats endpoints report zero.
package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/alpinaconnect/backend/internal/domain"
)

// keyPrefix namespaces the counters inside a shared Redis instance.
const keyPrefix = "alpina:page_views:"

// PageViews counts page views per page slug using Redis INCR.
type PageViews struct {
	rdb *redis.Client
}

// NewPageViews constructs a PageViews counter backed by the given client.
func NewPageViews(rdb *redis.Client) *PageViews {
	return &PageViews{rdb: rdb}
}

// Increment bumps the page's counter and returns the new total.
// Returns domain.ErrValidation for an empty or malformed page slug.
func (p *PageViews) Increment(ctx context.Context, page string) (int64, error) {
	if err := validatePage(page); err != nil {
		return 0, err
	}
	n, err := p.rdb.Incr(ctx, keyPrefix+page).Result()
	if err != nil {
		return 0, fmt.Errorf("stats.PageViews.Increment: %w", err)
	}
	return n, nil
}

// Get returns the page's current counter. A page never viewed reads as zero.
func (p *PageViews) Get(ctx context.Context, page string) (int64, error) {
	if err := validatePage(page); err != nil {
		return 0, err
	}
	n, err := p.rdb.Get(ctx, keyPrefix+page).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("stats.PageViews.Get: %w", err)
	}
	return n, nil
}

// Noop is the counter used when Redis is not configured.
// Increments are dropped and reads always return zero.
type Noop struct{}

// Increment validates the slug and drops the count.
func (Noop) Increment(_ context.Context, page string) (int64, error) {
	if err := validatePage(page); err != nil {
		return 0, err
	}
	return 0, nil
}

// Get validates the slug and returns zero.
func (Noop) Get(_ context.Context, page string) (int64, error) {
	if err := validatePage(page); err != nil {
		return 0, err
	}
	return 0, nil
}

// validatePage restricts page slugs to lowercase letters, digits, hyphens
// and underscores, so arbitrary input cannot fan out into unbounded keys.
func validatePage(page string) error {
	if page == "" {
		return fmt.Errorf("%w: page is required", domain.ErrValidation)
	}
	for _, r := range page {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: invalid page slug %q", domain.ErrValidation, page)
		}
	}
	if len(page) > 64 || strings.HasPrefix(page, "-") {
		return fmt.Errorf("%w: invalid page slug %q", domain.ErrValidation, page)
	}
	return nil
}
