package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/AK-1225/SPONproject/config"
	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/remote"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/database"
	"github.com/AK-1225/SPONproject/pkg/logger"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// flakyRemote fails a fixed fraction of inserts to exercise the local fallback path
type flakyRemote struct {
	inner    remote.SupportRemote
	failRate float64
	mu       sync.Mutex
	rng      *rand.Rand
}

func (f *flakyRemote) Insert(ctx context.Context, s *model.Support) (*remote.Inserted, error) {
	f.mu.Lock()
	fail := f.rng.Float64() < f.failRate
	f.mu.Unlock()
	if fail {
		return nil, errors.New("injected remote failure")
	}
	return f.inner.Insert(ctx, s)
}

func main() {
	cfg := must(config.Load())
	_ = logger.Init("release")
	db := must(database.InitDB(cfg))
	must(0, database.Migrate(db))

	mr := must(miniredis.Run())
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	N := 10000
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			N = n
		}
	}
	CONC := 8
	if s := os.Getenv("CONC"); s != "" {
		if c, err := strconv.Atoi(s); err == nil && c > 0 {
			CONC = c
		}
	}
	FAIL := 0.1
	if s := os.Getenv("FAIL"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 && f <= 1 {
			FAIL = f
		}
	}

	supportRepo := repository.NewSupportRepository(db)
	rem := &flakyRemote{
		inner:    remote.NewRedisSupportRemote(rdb),
		failRate: FAIL,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	svc := service.NewSupportService(supportRepo, rem, nil)

	ctx := context.Background()
	athleteID := "a0"

	// seed fans
	fans := make([]string, N)
	for i := range fans {
		fans[i] = uuid.New().String()
	}

	var localCount atomic.Int64
	latCh := make(chan time.Duration, N)
	feed := make(chan int, N)
	for i := 0; i < N; i++ {
		feed <- i
	}
	close(feed)

	t0 := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < CONC; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range feed {
				st := time.Now()
				entry, err := svc.Record(ctx, service.RecordInput{
					FanID:         fans[i],
					AthleteID:     athleteID,
					Amount:        100,
					Purpose:       model.PurposeEquipment,
					PaymentMethod: model.PaymentCard,
				})
				if err != nil {
					panic(err)
				}
				if !entry.Remote {
					localCount.Add(1)
				}
				latCh <- time.Since(st)
			}
		}()
	}
	wg.Wait()
	close(latCh)
	total := time.Since(t0)

	lats := make([]time.Duration, 0, N)
	for d := range latCh {
		lats = append(lats, d)
	}

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 {
			return 0
		}
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 {
			k = 0
		}
		if k >= len(xs) {
			k = len(xs) - 1
		}
		return xs[k]
	}

	// aggregate must equal the ledger sum regardless of how many inserts fell back
	var mismatches int
	for _, fanID := range fans {
		agg := must(supportRepo.Total(ctx, fanID, athleteID))
		sum := must(supportRepo.SumFromLedger(ctx, fanID, athleteID))
		if agg != sum {
			mismatches++
		}
	}

	fmt.Printf("N=%d, CONC=%d, FAIL=%.2f\n", N, CONC, FAIL)
	fmt.Printf("Record latency total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		total, total/time.Duration(N), pct(lats, 0.50), pct(lats, 0.95), pct(lats, 0.99))
	fmt.Printf("Local fallbacks: %d/%d\n", localCount.Load(), N)
	fmt.Printf("Aggregate/ledger mismatches: %d\n", mismatches)
}
