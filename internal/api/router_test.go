package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AK-1225/SPONproject/config"
	"github.com/AK-1225/SPONproject/internal/api/handler"
	"github.com/AK-1225/SPONproject/internal/cache"
	"github.com/AK-1225/SPONproject/internal/remote"
	"github.com/AK-1225/SPONproject/internal/repository"
	"github.com/AK-1225/SPONproject/internal/service"
	"github.com/AK-1225/SPONproject/pkg/database"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, RateLimit: 1000, RateBurst: 1000},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireMin: 60},
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	notifySvc := service.NewNotificationService(repository.NewNotificationRepository(db))
	contentRepo := repository.NewContentRepository(db)

	relSvc := service.NewRelationshipService(followRepo, fanRepo, blockRepo, nil, notifySvc)
	supportSvc := service.NewSupportService(supportRepo, remote.NewRedisSupportRemote(rdb), notifySvc)
	tierSvc := service.NewTierService(supportRepo, followRepo)
	contentSvc := service.NewContentService(contentRepo, fanRepo, notifySvc)
	engagementSvc := service.NewEngagementService(repository.NewEngagementRepository(db), contentRepo, notifySvc)
	boardSvc := service.NewBoardService(repository.NewBoardRepository(db), blockRepo, tierSvc, notifySvc)
	authSvc := service.NewAuthService(userRepo, contentSvc, cfg.JWT.Secret, time.Hour)
	athleteCache := cache.NewAthleteCache(db, rdb, time.Minute)

	h := handler.New(authSvc, relSvc, supportSvc, tierSvc, engagementSvc, contentSvc, boardSvc, notifySvc, athleteCache)
	return NewRouter(cfg, h)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

type authData struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

func registerUser(t *testing.T, r *gin.Engine, email, name, userType string) authData {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": email, "password": "hunter22", "name": name, "user_type": userType,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var d authData
	require.NoError(t, json.Unmarshal(env.Data, &d))
	return d
}

func TestSupportToSupporterFlow(t *testing.T) {
	r := newTestServer(t)
	athlete := registerUser(t, r, "yamada@example.com", "山田", "athlete")
	fan := registerUser(t, r, "taro@example.com", "太郎", "fan")

	// 未认证直接 401
	w, _ := do(t, r, http.MethodGet, "/api/v1/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 初始 tier 是 general，掲示板发言被拒
	w, env := do(t, r, http.MethodGet, "/api/v1/supports/tier/"+athlete.UserID, fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tier struct {
		Tier         string `json:"tier"`
		Total        int64  `json:"total"`
		CanPostBoard bool   `json:"can_post_board"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tier))
	assert.Equal(t, "general", tier.Tier)

	w, _ = do(t, r, http.MethodPost, "/api/v1/board", fan.Token, gin.H{
		"athlete_id": athlete.UserID, "content": "応援しています",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 支援 150 円 → supporter
	w, _ = do(t, r, http.MethodPost, "/api/v1/supports", fan.Token, gin.H{
		"athlete_id": athlete.UserID, "amount": 150,
		"purpose": "travel", "payment_method": "wallet", "message": "頑張って",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = do(t, r, http.MethodGet, "/api/v1/supports/tier/"+athlete.UserID, fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &tier))
	assert.Equal(t, "supporter", tier.Tier)
	assert.Equal(t, int64(150), tier.Total)
	assert.True(t, tier.CanPostBoard)

	// 现在能上掲示板
	w, _ = do(t, r, http.MethodPost, "/api/v1/board", fan.Token, gin.H{
		"athlete_id": athlete.UserID, "content": "応援しています",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 选手收到支援通知
	w, env = do(t, r, http.MethodGet, "/api/v1/notifications", athlete.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var notifications []struct {
		Type   string `json:"Type"`
		Amount int64  `json:"Amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &notifications))
	require.NotEmpty(t, notifications)
}

func TestFollowAndBlockFlow(t *testing.T) {
	r := newTestServer(t)
	athlete := registerUser(t, r, "yamada@example.com", "山田", "athlete")
	fan := registerUser(t, r, "taro@example.com", "太郎", "fan")

	w, _ := do(t, r, http.MethodPost, "/api/v1/relations/follow", fan.Token, gin.H{
		"athlete_id": athlete.UserID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env := do(t, r, http.MethodGet, "/api/v1/relations/following", fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var paged struct {
		List []string `json:"list"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &paged))
	assert.Equal(t, []string{athlete.UserID}, paged.List)

	// 关注后 tier 是 follower
	w, env = do(t, r, http.MethodGet, "/api/v1/supports/tier/"+athlete.UserID, fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tier struct {
		Tier string `json:"tier"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tier))
	assert.Equal(t, "follower", tier.Tier)

	// 拉黑切断关注
	w, _ = do(t, r, http.MethodPost, "/api/v1/relations/block", athlete.Token, gin.H{
		"user_id": fan.UserID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = do(t, r, http.MethodGet, "/api/v1/relations/following", fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	paged.List = nil
	require.NoError(t, json.Unmarshal(env.Data, &paged))
	assert.Empty(t, paged.List)
}

func TestPostVisibilityOverHTTP(t *testing.T) {
	r := newTestServer(t)
	athlete := registerUser(t, r, "yamada@example.com", "山田", "athlete")
	fan := registerUser(t, r, "taro@example.com", "太郎", "fan")

	for _, vis := range []string{"public", "followers", "supporters"} {
		w, _ := do(t, r, http.MethodPost, "/api/v1/posts", athlete.Token, gin.H{
			"caption": "投稿 " + vis, "visibility": vis,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w, env := do(t, r, http.MethodGet, "/api/v1/athletes/"+athlete.UserID+"/posts", fan.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 1) // general 只见 public

	// 本人全量可见
	w, env = do(t, r, http.MethodGet, "/api/v1/athletes/"+athlete.UserID+"/posts", athlete.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	assert.Len(t, posts, 3)
}
