package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/pkg/database"
)

func newCacheStack(t *testing.T) (*AthleteCache, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAthleteCache(db, rdb, time.Minute), db, mr
}

func seedFans(t *testing.T, db *gorm.DB, athleteID string, n int) {
	t.Helper()
	base := time.Now()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&model.Fan{
			ID:        fmt.Sprintf("fan-%s-%d", athleteID, i),
			AthleteID: athleteID,
			FanID:     fmt.Sprintf("f%03d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}).Error)
	}
}

func TestFetchFansCacheAside(t *testing.T) {
	c, db, _ := newCacheStack(t)
	ctx := context.Background()
	seedFans(t, db, "a1", 30)

	page1, err := c.FetchFans(ctx, "a1", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	// 新在前
	assert.Equal(t, "f029", page1[0])

	indexLoads, _ := c.Counters()
	assert.Equal(t, int64(1), indexLoads)

	// 第二页命中缓存，不再回源
	page2, err := c.FetchFans(ctx, "a1", 2, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 10)
	assert.Equal(t, "f019", page2[0])
	indexLoads, _ = c.Counters()
	assert.Equal(t, int64(1), indexLoads)

	// 失效后重新回源
	c.Invalidate(ctx, "a1")
	_, err = c.FetchFans(ctx, "a1", 1, 10)
	require.NoError(t, err)
	indexLoads, _ = c.Counters()
	assert.Equal(t, int64(2), indexLoads)
}

func TestFetchFansPageBeyondEnd(t *testing.T) {
	c, db, _ := newCacheStack(t)
	ctx := context.Background()
	seedFans(t, db, "a1", 5)

	page, err := c.FetchFans(ctx, "a1", 3, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestSnapshotsMGetWithDBFallback(t *testing.T) {
	c, db, mr := newCacheStack(t)
	ctx := context.Background()

	for _, id := range []string{"a1", "a2"} {
		require.NoError(t, db.Create(&model.Athlete{
			ID: id, Email: id + "@example.com", Name: "選手" + id, Sport: "サッカー",
		}).Error)
	}

	snaps, err := c.Snapshots(ctx, []string{"a1", "a2", "ghost"})
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "a1", snaps[0].ID)
	assert.True(t, mr.Exists("athlete:a1"))

	_, bulkLoads := c.Counters()
	assert.Equal(t, int64(1), bulkLoads)

	// 第二次全部命中 MGET
	_, err = c.Snapshots(ctx, []string{"a1", "a2"})
	require.NoError(t, err)
	_, bulkLoads = c.Counters()
	assert.Equal(t, int64(1), bulkLoads)
}
