package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AK-1225/SPONproject/internal/model"
	"github.com/AK-1225/SPONproject/internal/repository"
)

// AuthService 身份边界：注册 / 登录并签发 JWT。
// 核心引擎只信任 token 里的 {sub, user_type}，不自己做鉴权。
type AuthService struct {
	users   repository.UserRepository
	content *ContentService
	secret  []byte
	expire  time.Duration
}

func NewAuthService(users repository.UserRepository, content *ContentService, secret string, expire time.Duration) *AuthService {
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return &AuthService{users: users, content: content, secret: []byte(secret), expire: expire}
}

// Register 注册账号；userType=athlete 时同步建选手档案（幂等）
func (s *AuthService) Register(ctx context.Context, email, password, name, userType string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", ErrMissingID
	}
	if userType != model.UserTypeFan && userType != model.UserTypeAthlete {
		userType = model.UserTypeFan
	}
	if existing, err := s.users.GetByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &model.User{
		ID:       uuid.New().String(),
		Email:    email,
		Name:     name,
		UserType: userType,
		Handle:   GenerateHandle(),
		Password: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	if userType == model.UserTypeAthlete && s.content != nil {
		if _, err := s.content.RegisterAthlete(ctx, RegisterAthleteInput{
			ID:     u.ID,
			Email:  u.Email,
			Name:   u.Name,
			Handle: u.Handle,
		}); err != nil {
			return nil, "", err
		}
	}

	token, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", ErrBadCredentials
	}
	token, err := s.issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) issue(u *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.ID,
		"user_type": u.UserType,
		"name":      u.Name,
		"iat":       now.Unix(),
		"exp":       now.Add(s.expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
