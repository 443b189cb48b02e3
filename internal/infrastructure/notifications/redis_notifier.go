package notifications

import (
	"context"
	"encoding/json"
	"log"

	"webara_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes notifications as JSON on a Redis pub/sub channel.
// The notification service subscribes to the same channel.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

// Connect builds a client from a redis:// URL without dialing.
func Connect(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (n *RedisNotifier) Notify(ctx context.Context, payload interfaces.Notification) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		return err
	}
	log.Printf("[notifications][redis] published channel=%s quote_id=%s role=%s", n.channel, payload.QuoteID, payload.Role)
	return nil
}
