package reactions

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLedger(t *testing.T) (*RedisLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLedger(client, "test"), mr
}

func TestLedgers_CountsMatch(t *testing.T) {
	redisLedger, _ := newTestRedisLedger(t)
	ledgers := map[string]Ledger{
		"memory": NewMemoryLedger(),
		"redis":  redisLedger,
	}

	sequence := []Reaction{
		{UserID: 2, PostID: 1, Kind: KindLike},
		{UserID: 3, PostID: 1, Kind: KindLike},
		{UserID: 2, PostID: 1, Kind: KindDislike},
		{UserID: 2, PostID: 2, Kind: KindLike},
		{UserID: 2, PostID: 1, Kind: KindLike},
	}

	for name, ledger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, r := range sequence {
				require.NoError(t, ledger.Append(ctx, r))
			}

			likes, err := ledger.Count(ctx, 1, KindLike)
			require.NoError(t, err)
			assert.Equal(t, int64(3), likes, "duplicate reactions are kept")

			dislikes, err := ledger.Count(ctx, 1, KindDislike)
			require.NoError(t, err)
			assert.Equal(t, int64(1), dislikes)

			likes, err = ledger.Count(ctx, 2, KindLike)
			require.NoError(t, err)
			assert.Equal(t, int64(1), likes)

			none, err := ledger.Count(ctx, 42, KindDislike)
			require.NoError(t, err)
			assert.Zero(t, none)
		})
	}
}

func TestMemoryLedger_ConcurrentAppend(t *testing.T) {
	ledger := NewMemoryLedger()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			_ = ledger.Append(ctx, Reaction{UserID: uid, PostID: 1, Kind: KindLike})
		}(int64(i + 1))
	}
	wg.Wait()

	n, err := ledger.Count(ctx, 1, KindLike)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
}

func TestRedisLedger_KeyLayout(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, Reaction{UserID: 4, PostID: 9, Kind: KindDislike}))

	assert.True(t, mr.Exists("test:post:9:dislikes"))
	items, err := mr.List("test:post:9:dislikes")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], `"user_id":4`)
	assert.Contains(t, items[0], `"kind":"dislike"`)
}

func TestRedisLedger_Unavailable(t *testing.T) {
	ledger, mr := newTestRedisLedger(t)
	mr.Close()

	err := ledger.Append(context.Background(), Reaction{UserID: 1, PostID: 1, Kind: KindLike})
	assert.Error(t, err)

	_, err = ledger.Count(context.Background(), 1, KindLike)
	assert.Error(t, err)
	assert.Error(t, ledger.Health(context.Background()))
}

func TestNewRedisLedger_DefaultPrefix(t *testing.T) {
	ledger := NewRedisLedger(nil, "")
	assert.Equal(t, "postboard:post:1:likes", ledger.key(1, KindLike))
}
