package reactions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLedger keeps reactions in Redis lists so that several processes can
// share counts. Keys look like "<prefix>:post:<id>:likes".
type RedisLedger struct {
	client *redis.Client
	prefix string
}

// NewRedisLedger creates a ledger on an existing client
func NewRedisLedger(client *redis.Client, prefix string) *RedisLedger {
	if prefix == "" {
		prefix = "postboard"
	}
	return &RedisLedger{client: client, prefix: prefix}
}

// ConnectRedis opens a client and checks the connection
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// Append records a reaction at the tail of the post's list
func (l *RedisLedger) Append(ctx context.Context, r Reaction) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reaction: %w", err)
	}
	if err := l.client.RPush(ctx, l.key(r.PostID, r.Kind), data).Err(); err != nil {
		return fmt.Errorf("append %s: %w", r.Kind, err)
	}
	return nil
}

// Count returns the length of the post's list for kind
func (l *RedisLedger) Count(ctx context.Context, postID int64, kind Kind) (int64, error) {
	n, err := l.client.LLen(ctx, l.key(postID, kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("count %ss: %w", kind, err)
	}
	return n, nil
}

// Health pings the backing Redis
func (l *RedisLedger) Health(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLedger) key(postID int64, kind Kind) string {
	return fmt.Sprintf("%s:post:%d:%ss", l.prefix, postID, kind)
}
