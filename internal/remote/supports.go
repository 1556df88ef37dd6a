package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AK-1225/SPONproject/internal/model"
)

// Inserted 远端落库回执（远端分配 id 与服务端时间戳）
type Inserted struct {
	ID        string
	CreatedAt time.Time
}

// SupportRemote 远端支援台账。单次尝试、失败由调用方本地兜底，
// 这里不做重试。
type SupportRemote interface {
	Insert(ctx context.Context, s *model.Support) (*Inserted, error)
}

const (
	seqKey     = "supports:seq"
	entryKey   = "supports:entry:%s"
	fanIndex   = "supports:fan:%s"
	insertWait = 3 * time.Second
)

// RedisSupportRemote redis 实现：hash 存记录，list 存 fan 维度索引
type RedisSupportRemote struct {
	rdb *redis.Client
}

func NewRedisSupportRemote(rdb *redis.Client) *RedisSupportRemote {
	return &RedisSupportRemote{rdb: rdb}
}

func (r *RedisSupportRemote) Insert(ctx context.Context, s *model.Support) (*Inserted, error) {
	ctx, cancel := context.WithTimeout(ctx, insertWait)
	defer cancel()

	seq, err := r.rdb.Incr(ctx, seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("remote insert: %w", err)
	}
	id := fmt.Sprintf("sup-%d", seq)
	now := time.Now()

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, fmt.Sprintf(entryKey, id), map[string]any{
		"fan_id":         s.FanID,
		"athlete_id":     s.AthleteID,
		"amount":         s.Amount,
		"purpose":        string(s.Purpose),
		"payment_method": string(s.PaymentMethod),
		"message":        s.Message,
		"post_id":        s.PostID,
		"created_at":     now.Format(time.RFC3339Nano),
	})
	pipe.RPush(ctx, fmt.Sprintf(fanIndex, s.FanID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("remote insert: %w", err)
	}
	return &Inserted{ID: id, CreatedAt: now}, nil
}
