package timings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/salat/internal/constants"
	"github.com/julianstephens/salat/internal/logger"
)

// CachedClient keeps every successfully fetched day on disk so the same
// date, location and method are only requested once.
type CachedClient struct {
	next Fetcher
	d    *diskv.Diskv
}

func NewCachedClient(next Fetcher, basePath string) *CachedClient {
	return &CachedClient{
		next: next,
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: constants.TimingsCacheMaxMem,
		}),
	}
}

func cacheKey(date string, loc Location) string {
	tz := strings.NewReplacer("/", "_", " ", "_").Replace(loc.Timezone)
	return fmt.Sprintf("%s_%.6f_%.6f_m%d_%s", date, loc.Latitude, loc.Longitude, loc.Method, tz)
}

func (c *CachedClient) Fetch(ctx context.Context, date string, loc Location) (Day, error) {
	key := cacheKey(date, loc)
	if c.d.Has(key) {
		val, err := c.d.Read(key)
		if err == nil {
			var day Day
			if err := json.Unmarshal(val, &day); err == nil && day.Boundaries.Complete() {
				return day, nil
			}
		}
		logger.Warn("discarding unreadable timings cache entry", "key", key)
		_ = c.d.Erase(key)
	}

	day, err := c.next.Fetch(ctx, date, loc)
	if err != nil {
		return Day{}, err
	}

	if val, err := json.Marshal(day); err == nil {
		if err := c.d.Write(key, val); err != nil {
			logger.Warn("failed to cache timings", "key", key, "error", err)
		}
	}
	return day, nil
}

// Clear removes every cached day.
func (c *CachedClient) Clear() error {
	return c.d.EraseAll()
}
