package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/pkg/database"
)

func newRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestAppendMaintainsAggregate(t *testing.T) {
	repo := NewSupportRepository(newRepoTestDB(t))
	ctx := context.Background()

	// 未知配对记 0
	total, err := repo.Total(ctx, "f1", "a1")
	require.NoError(t, err)
	assert.Zero(t, total)

	for i, amt := range []int64{100, 250, 50} {
		require.NoError(t, repo.Append(ctx, &model.Support{
			ID: fmt.Sprintf("s%d", i), FanID: "f1", AthleteID: "a1", Amount: amt,
			Purpose: model.PurposeTravel, PaymentMethod: model.PaymentCard,
		}))
	}

	total, err = repo.Total(ctx, "f1", "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(400), total)

	sum, err := repo.SumFromLedger(ctx, "f1", "a1")
	require.NoError(t, err)
	assert.Equal(t, total, sum)

	// 配对隔离
	require.NoError(t, repo.Append(ctx, &model.Support{
		ID: "sx", FanID: "f2", AthleteID: "a1", Amount: 999,
		Purpose: model.PurposeTravel, PaymentMethod: model.PaymentCard,
	}))
	total, _ = repo.Total(ctx, "f1", "a1")
	assert.Equal(t, int64(400), total)
}

func TestCountSupportersDistinct(t *testing.T) {
	repo := NewSupportRepository(newRepoTestDB(t))
	ctx := context.Background()

	for i, fan := range []string{"f1", "f1", "f2"} {
		require.NoError(t, repo.Append(ctx, &model.Support{
			ID: fmt.Sprintf("s%d", i), FanID: fan, AthleteID: "a1", Amount: 100,
			Purpose: model.PurposeOther, PaymentMethod: model.PaymentWallet,
		}))
	}
	cnt, err := repo.CountSupporters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}
