package deals

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dealpulse/internal/model"
)

const cacheTTL = 5 * time.Minute

// Cache is a short-lived Redis cache for api-sourced listings. The key
// carries the affiliate tag, so changing the configured tag never serves
// URLs built for the old one.
type Cache struct {
	Client *redis.Client
	Tag    string
}

func (c *Cache) key(category model.Category, limit int) string {
	return fmt.Sprintf("deals:%s:%s:%d", c.Tag, category, limit)
}

func (c *Cache) Get(ctx context.Context, category model.Category, limit int) ([]model.DealRecord, bool) {
	val, err := c.Client.Get(ctx, c.key(category, limit)).Result()
	if err != nil {
		return nil, false
	}

	var listed []model.DealRecord
	if err := json.Unmarshal([]byte(val), &listed); err != nil {
		return nil, false
	}
	return listed, true
}

func (c *Cache) Set(ctx context.Context, category model.Category, limit int, listed []model.DealRecord) {
	b, err := json.Marshal(listed)
	if err != nil {
		return
	}
	c.Client.Set(ctx, c.key(category, limit), b, cacheTTL)
}
