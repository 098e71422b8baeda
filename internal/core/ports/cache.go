package ports

import (
	"context"
	"time"
)

// FetchFunc loads the value for a cache key on a miss.
type FetchFunc func(ctx context.Context) (any, error)

// ExpiryFunc computes the instant a freshly stored entry expires, given the
// time it was fetched.
type ExpiryFunc func(fetchedAt time.Time) time.Time

// RateCache is a string-keyed store supporting get-or-populate-with-expiry.
// On a hit the stored value is returned and fetch is never invoked; on a
// miss fetch runs once and its result is stored until the instant computed
// by expiry. Entries past their expiry are treated as absent. Implementations
// must be safe for concurrent use; concurrent misses for the same key may
// each invoke fetch (no single-flight guarantee).
type RateCache interface {
	GetOrFetch(ctx context.Context, key string, expiry ExpiryFunc, fetch FetchFunc) (any, error)
}

// ExpireAtUTCMidnight expires an entry at the next UTC midnight after it was
// fetched, so "latest" data fetched at any point during a UTC calendar day
// is served from cache until that day ends.
func ExpireAtUTCMidnight(fetchedAt time.Time) time.Time {
	y, m, d := fetchedAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// ExpireAfter returns a rolling expiry policy measured from fetch time.
func ExpireAfter(ttl time.Duration) ExpiryFunc {
	return func(fetchedAt time.Time) time.Time {
		return fetchedAt.Add(ttl)
	}
}
