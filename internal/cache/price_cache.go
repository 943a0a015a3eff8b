package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"resale-negotiation/utils"
)

// PriceCache is a Redis-backed projection of each item's current highest
// bid. It is a best-effort pre-filter in front of the authoritative store:
// a cache miss or Redis failure never blocks a bid, and the raise-only Lua
// script guarantees a stale writer can never lower a cached price.
type PriceCache struct {
	client *redis.Client
	raise  *redis.Script
}

// raiseScript sets the cached price only when the new value is higher,
// so out-of-order updates cannot regress the projection
const raiseScript = `
	local current = redis.call('GET', KEYS[1])
	if not current or tonumber(ARGV[1]) > tonumber(current) then
		redis.call('SET', KEYS[1], ARGV[1])
		return ARGV[1]
	end
	return current
`

// New connects to Redis and verifies connectivity
func New(addr, password string, db int) (*PriceCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &PriceCache{
		client: rdb,
		raise:  redis.NewScript(raiseScript),
	}, nil
}

// Close releases the Redis connection
func (c *PriceCache) Close() error {
	return c.client.Close()
}

func priceKey(itemID string) string {
	return fmt.Sprintf("item:%s:highest_bid", itemID)
}

// CurrentHighest returns the cached highest bid for an item. The second
// return value is false on a miss or any Redis error.
func (c *PriceCache) CurrentHighest(ctx context.Context, itemID string) (float64, bool) {
	val, err := c.client.Get(ctx, priceKey(itemID)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.Warn("price cache read failed", map[string]any{"item_id": itemID, "error": err.Error()})
		}
		return 0, false
	}

	price, err := strconv.ParseFloat(val, 64)
	if err != nil {
		utils.Warn("price cache holds unparseable value", map[string]any{"item_id": itemID, "value": val})
		return 0, false
	}
	return price, true
}

// RaiseTo raises the cached highest bid for an item. Best effort: failures
// are logged and ignored, the authoritative projection lives in the store.
func (c *PriceCache) RaiseTo(ctx context.Context, itemID string, amount float64) {
	keys := []string{priceKey(itemID)}
	if err := c.raise.Run(ctx, c.client, keys, amount).Err(); err != nil {
		utils.Warn("price cache update failed", map[string]any{
			"item_id": itemID,
			"amount":  amount,
			"error":   err.Error(),
		})
	}
}
