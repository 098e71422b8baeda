package cache

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
)

func newTestCache(at time.Time) (*MemoryCache, *time.Time) {
	current := at
	c := NewMemoryCache(slog.Default())
	c.now = func() time.Time { return current }
	return c, &current
}

func countingFetch(calls *int, value any) ports.FetchFunc {
	return func(ctx context.Context) (any, error) {
		*calls++
		return value, nil
	}
}

func TestGetOrFetch_MissThenHit(t *testing.T) {
	c, _ := newTestCache(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	calls := 0

	v, err := c.GetOrFetch(context.Background(), "rates_latest_USD", ports.ExpireAtUTCMidnight, countingFetch(&calls, "first"))
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	v, err = c.GetOrFetch(context.Background(), "rates_latest_USD", ports.ExpireAtUTCMidnight, countingFetch(&calls, "second"))
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetch_ExpiredEntryRefetched(t *testing.T) {
	c, now := newTestCache(time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC))
	calls := 0

	_, err := c.GetOrFetch(context.Background(), "rates_latest_USD", ports.ExpireAtUTCMidnight, countingFetch(&calls, "old"))
	require.NoError(t, err)

	// Cross the UTC midnight boundary
	*now = time.Date(2025, 6, 3, 0, 0, 1, 0, time.UTC)

	v, err := c.GetOrFetch(context.Background(), "rates_latest_USD", ports.ExpireAtUTCMidnight, countingFetch(&calls, "fresh"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetch_RollingExpiry(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	c, now := newTestCache(start)
	calls := 0
	monthly := ports.ExpireAfter(30 * 24 * time.Hour)

	_, err := c.GetOrFetch(context.Background(), "rates_historical_USD_2025-05-01_2025-05-31", monthly, countingFetch(&calls, "series"))
	require.NoError(t, err)

	// Still valid one day before the TTL elapses
	*now = start.Add(29 * 24 * time.Hour)
	_, err = c.GetOrFetch(context.Background(), "rates_historical_USD_2025-05-01_2025-05-31", monthly, countingFetch(&calls, "series"))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	*now = start.Add(30*24*time.Hour + time.Second)
	_, err = c.GetOrFetch(context.Background(), "rates_historical_USD_2025-05-01_2025-05-31", monthly, countingFetch(&calls, "series"))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetch_FetchErrorNotStored(t *testing.T) {
	c, _ := newTestCache(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	boom := errors.New("upstream down")

	_, err := c.GetOrFetch(context.Background(), "k", ports.ExpireAtUTCMidnight, func(ctx context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestExpireAtUTCMidnight(t *testing.T) {
	fetchedAt := time.Date(2025, 6, 2, 15, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), ports.ExpireAtUTCMidnight(fetchedAt))
}

func TestExpireAtUTCMidnight_NormalizesZone(t *testing.T) {
	// 23:00 UTC-5 is 04:00 UTC the next day
	est := time.FixedZone("EST", -5*3600)
	fetchedAt := time.Date(2025, 6, 2, 23, 0, 0, 0, est)

	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), ports.ExpireAtUTCMidnight(fetchedAt))
}
