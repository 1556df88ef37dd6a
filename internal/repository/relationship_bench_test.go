package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AK-1225/SPONproject/internal/model"
)

func setupRelBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Follow{}, &model.Fan{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkFollowWrite_And_FanRedundancy(b *testing.B) {
	db := setupRelBenchDB(b)
	followRepo := NewFollowRepository(db)
	fanRepo := NewFanRepository(db)
	ctx := context.Background()

	// 预创建 fan 与 athlete
	fans := make([]string, 1000)
	for i := range fans {
		fans[i] = fmt.Sprintf("f%04d", i)
	}
	athletes := make([]string, 100)
	for i := range athletes {
		athletes[i] = fmt.Sprintf("a%04d", i)
	}

	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fanID := fans[rng.Intn(len(fans))]
		athleteID := athletes[rng.Intn(len(athletes))]
		_ = followRepo.Create(ctx, fanID, athleteID)
		_ = fanRepo.Create(ctx, athleteID, fanID)
	}
}

func BenchmarkQueryFansAndFollowing(b *testing.B) {
	db := setupRelBenchDB(b)
	followRepo := NewFollowRepository(db)
	fanRepo := NewFanRepository(db)
	ctx := context.Background()

	// 构造：选手 a0 有 N 个粉丝，粉丝 f0 关注 N 个选手
	const N = 5000
	for i := 0; i < N; i++ {
		fanID := fmt.Sprintf("f%v", i)
		athleteID := fmt.Sprintf("a%v", i)
		_ = followRepo.Create(ctx, fanID, "a0")
		_ = fanRepo.Create(ctx, "a0", fanID)
		_ = followRepo.Create(ctx, "f0", athleteID)
		_ = fanRepo.Create(ctx, athleteID, "f0")
	}

	b.ResetTimer()
	b.Run("ListFans", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = fanRepo.ListFans(ctx, "a0", 0, 50)
		}
	})

	b.Run("ListFollowing", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = followRepo.ListFollowing(ctx, "f0", 0, 50)
		}
	})
}
