// seeder/leaderboard/publisher.go
package leaderboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/octofit/octofit-tracker/shared/models"
	redisu "github.com/octofit/octofit-tracker/shared/redis"
)

// sortedSetWriter is the subset of the go-redis API the publisher needs.
// *redis.ClusterClient and *redis.Client both satisfy it.
type sortedSetWriter interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisPublisher mirrors seeded leaderboard entries into a Redis sorted set so
// readers can rank teams with ZREVRANGE without touching MongoDB.
type RedisPublisher struct {
	redisClient sortedSetWriter
	key         string
	logger      *log.Logger
	now         func() time.Time
}

// NewRedisPublisher creates a publisher writing to key. An empty key falls back
// to redisu.DefaultLeaderboardKey, a nil logger to log.Default().
func NewRedisPublisher(redisClient sortedSetWriter, key string, logger *log.Logger) *RedisPublisher {
	if key == "" {
		key = redisu.DefaultLeaderboardKey
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RedisPublisher{
		redisClient: redisClient,
		key:         key,
		logger:      logger,
		now:         time.Now,
	}
}

// Key returns the sorted set key entries are written to.
func (rp *RedisPublisher) Key() string {
	return rp.key
}

// Publish replaces the sorted set with the given entries. The delete and the
// ZADD run in one MULTI/EXEC on the same key, so a failed write leaves the
// previous leaderboard in place. Entries sharing a team name collapse into one
// member holding the last score written.
func (rp *RedisPublisher) Publish(ctx context.Context, runID string, entries []models.LeaderboardEntry) error {
	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redis.Z{Score: float64(e.Points), Member: e.Team})
	}

	_, err := rp.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, rp.key)
		if len(members) > 0 {
			pipe.ZAdd(ctx, rp.key, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace leaderboard %s in Redis: %w", rp.key, err)
	}

	// Different hash slot than the sorted set, so it cannot join the transaction.
	infoKey := rp.key + redisu.LeaderboardSeedInfoSuffix
	if err := rp.redisClient.HSet(ctx, infoKey,
		"run_id", runID,
		"seeded_at", rp.now().UTC().Format(time.RFC3339),
	).Err(); err != nil {
		rp.logger.Printf("WARN: Failed to record seed run under %s: %v", infoKey, err)
	}

	rp.logger.Printf("INFO: Published %d leaderboard entries to Redis key %s (run %s)", len(entries), rp.key, runID)
	return nil
}
