package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// LeaderboardCacheStore caches computed leaderboards in redis. Entries
// are invalidated whenever a star award lands.
type LeaderboardCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ILeaderboardCache = (*LeaderboardCacheStore)(nil)

func NewLeaderboardCacheStore(rdb *redis.Client) *LeaderboardCacheStore {
	return &LeaderboardCacheStore{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func leaderboardKey(workspaceID string) string {
	return fmt.Sprintf("leaderboard:workspace:%s", workspaceID)
}

func (c *LeaderboardCacheStore) GetLeaderboard(ctx context.Context, workspaceID string) ([]entity.LeaderboardEntry, bool, error) {
	b, err := c.rdb.Get(ctx, leaderboardKey(workspaceID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []entity.LeaderboardEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, nil
	}
	return entries, true, nil
}

func (c *LeaderboardCacheStore) SetLeaderboard(ctx context.Context, workspaceID string, entries []entity.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, leaderboardKey(workspaceID), data, c.ttl).Err()
}

func (c *LeaderboardCacheStore) InvalidateLeaderboard(ctx context.Context, workspaceID string) error {
	return c.rdb.Del(ctx, leaderboardKey(workspaceID)).Err()
}
