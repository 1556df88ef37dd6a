package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

// AthleteSnapshot contains the minimal athlete info required by the
// following / supporters pages.
type AthleteSnapshot struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Sport         string `json:"sport"`
	Region        string `json:"region"`
	AvatarURL     string `json:"avatar_url"`
	FollowerCount int64  `json:"follower_count"`
}

// AthleteCache serves athlete snapshots and fan-id pages with a
// redis cache-aside in front of the primary store.
type AthleteCache struct {
	db    *gorm.DB
	cache *redis.Client
	ttl   time.Duration

	indexLoads atomic.Int64
	bulkLoads  atomic.Int64
}

func NewAthleteCache(db *gorm.DB, cache *redis.Client, ttl time.Duration) *AthleteCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &AthleteCache{db: db, cache: cache, ttl: ttl}
}

// FetchFans returns one page of an athlete's fan ids, newest first.
// The full id list is cached as a redis list so pages are LRANGE reads.
func (c *AthleteCache) FetchFans(ctx context.Context, athleteID string, page, size int) ([]string, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	key := fmt.Sprintf("fans:index:%s", athleteID)
	start := (page - 1) * size
	end := start + size - 1

	exists, _ := c.cache.Exists(ctx, key).Result()
	var ids []string
	if exists > 0 {
		ids, _ = c.cache.LRange(ctx, key, int64(start), int64(end)).Result()
	}
	if len(ids) == 0 {
		all, err := c.loadFanIDsAndCache(ctx, athleteID)
		if err != nil {
			return nil, err
		}
		if start >= len(all) {
			return []string{}, nil
		}
		endIdx := start + size
		if endIdx > len(all) {
			endIdx = len(all)
		}
		ids = all[start:endIdx]
	}
	return ids, nil
}

func (c *AthleteCache) loadFanIDsAndCache(ctx context.Context, athleteID string) ([]string, error) {
	c.indexLoads.Add(1)

	var ids []string
	if err := c.db.WithContext(ctx).
		Table("fans").
		Select("fan_id").
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Scan(&ids).Error; err != nil {
		return nil, err
	}

	key := fmt.Sprintf("fans:index:%s", athleteID)
	if len(ids) > 0 {
		vals := make([]interface{}, len(ids))
		for i, id := range ids {
			vals[i] = id
		}
		pipe := c.cache.Pipeline()
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, vals...)
		pipe.Expire(ctx, key, c.ttl)
		_, _ = pipe.Exec(ctx)
	}
	return ids, nil
}

// Invalidate drops the cached fan index for an athlete (after follow changes).
func (c *AthleteCache) Invalidate(ctx context.Context, athleteID string) {
	_ = c.cache.Del(ctx, fmt.Sprintf("fans:index:%s", athleteID)).Err()
}

// Snapshots bulk-loads athlete snapshots by id, MGET first, DB for misses.
func (c *AthleteCache) Snapshots(ctx context.Context, ids []string) ([]AthleteSnapshot, error) {
	if len(ids) == 0 {
		return []AthleteSnapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf("athlete:%s", id)
	}

	cached := make(map[string]AthleteSnapshot, len(ids))
	if vals, err := c.cache.MGet(ctx, keys...).Result(); err == nil {
		for i, v := range vals {
			if v == nil {
				continue
			}
			if str, ok := v.(string); ok {
				var snap AthleteSnapshot
				if uErr := json.Unmarshal([]byte(str), &snap); uErr == nil {
					cached[ids[i]] = snap
				}
			}
		}
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		c.bulkLoads.Add(1)

		var athletes []model.Athlete
		if err := c.db.WithContext(ctx).Where("id IN ?", missing).Find(&athletes).Error; err != nil {
			return nil, err
		}
		for _, a := range athletes {
			snap := AthleteSnapshot{
				ID:            a.ID,
				Name:          a.Name,
				Sport:         a.Sport,
				Region:        a.Region,
				AvatarURL:     a.AvatarURL,
				FollowerCount: a.FollowerCount,
			}
			cached[a.ID] = snap
			if payload, err := json.Marshal(snap); err == nil {
				_ = c.cache.Set(ctx, fmt.Sprintf("athlete:%s", a.ID), payload, c.ttl).Err()
			}
		}
	}

	result := make([]AthleteSnapshot, 0, len(ids))
	for _, id := range ids {
		if snap, ok := cached[id]; ok {
			result = append(result, snap)
		}
	}
	return result, nil
}

// Counters reports how many underlying DB loads were executed.
func (c *AthleteCache) Counters() (indexLoads, bulkLoads int64) {
	return c.indexLoads.Load(), c.bulkLoads.Load()
}
