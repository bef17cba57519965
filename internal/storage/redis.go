package storage

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tetris:highscores:"

// RedisStore keeps each game's list in a sorted set scored by points.
// Members are "<inverted sequence>:<unix nanos>" so that equal scores
// list the older entry first under ZREVRANGE.
type RedisStore struct {
	client *redis.Client
	limit  int
}

var _ Store = (*RedisStore)(nil)

// OpenRedis connects to the server named by a redis:// URL.
func OpenRedis(url string, limit int) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}
	return NewRedisWithClient(client, limit), nil
}

// NewRedisWithClient creates a Redis store with an existing client (for testing).
func NewRedisWithClient(client *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisStore{client: client, limit: limit}
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func scoresKey(gameID string) string { return redisKeyPrefix + gameID }
func seqKey(gameID string) string    { return redisKeyPrefix + gameID + ":seq" }

// Append adds the score and trims the set to the store limit.
func (s *RedisStore) Append(ctx context.Context, gameID string, hs HighScore) error {
	seq, err := s.client.Incr(ctx, seqKey(gameID)).Result()
	if err != nil {
		return fmt.Errorf("storage: cannot allocate score id: %w", err)
	}
	member := fmt.Sprintf("%019d:%d", math.MaxInt64-seq, hs.At.UnixNano())

	key := scoresKey(gameID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(hs.Score), Member: member})
		// Rank 0 is the lowest score; keep the top limit entries.
		pipe.ZRemRangeByRank(ctx, key, 0, int64(-s.limit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Top returns up to limit entries, best first.
func (s *RedisStore) Top(ctx context.Context, gameID string, limit int) ([]HighScore, error) {
	if limit <= 0 || limit > s.limit {
		limit = s.limit
	}
	zs, err := s.client.ZRevRangeWithScores(ctx, scoresKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return []HighScore{}, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]HighScore, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			return []HighScore{}, fmt.Errorf("%w: member %v", ErrCorrupt, z.Member)
		}
		at, err := parseMember(member)
		if err != nil {
			return []HighScore{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		entries = append(entries, HighScore{Score: int(z.Score), At: at})
	}
	return entries, nil
}

func parseMember(member string) (time.Time, error) {
	_, nanos, ok := strings.Cut(member, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("member %q has no timestamp", member)
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("member %q: %w", member, err)
	}
	return time.Unix(0, n), nil
}

// Clear removes the game's set and sequence counter.
func (s *RedisStore) Clear(ctx context.Context, gameID string) error {
	if err := s.client.Del(ctx, scoresKey(gameID), seqKey(gameID)).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
