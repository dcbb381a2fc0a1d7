package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/pkg/helpers"
)

const sessionTTL = 24 * time.Hour

// AuthService owns registration, credential checks and the Redis-backed
// session that every authenticated request resolves against.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

type RegisterInput struct {
	Username string
	Password string
	FullName string
	Role     entity.Role
}

// Register creates a user. The requested role defaults to user; an admin
// registration fails with a conflict when an admin already exists. The
// pre-check gives the friendly error; the partial unique index in storage
// closes the race two concurrent registrations would otherwise win together.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	if existing, err := s.Users.GetByUsername(ctx, in.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username already exists", ErrConflict)
	}
	if role == entity.RoleAdmin {
		admins, err := s.Users.GetByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if len(admins) > 0 {
			return nil, fmt.Errorf("%w: an admin already exists in the system", ErrConflict)
		}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: in.Username,
		Password: hash,
		FullName: in.FullName,
		Role:     role,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateUsername):
			return nil, fmt.Errorf("%w: username already exists", ErrConflict)
		case errors.Is(err, repo.ErrAdminExists):
			return nil, fmt.Errorf("%w: an admin already exists in the system", ErrConflict)
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	return u, nil
}

// Authenticate validates username/password with a constant-time bcrypt
// compare and returns the user without issuing tokens.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates the access/refresh pair and records the session in
// Redis. The session hash carries the role so authorization never needs an
// extra user lookup per request.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"username":   u.Username,
			"full_name":  u.FullName,
			"role":       u.Role.String(),
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, sessionTTL)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Login authenticates and opens a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the session id and token pair when the refresh token
// matches the live session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, ErrInvalidCredentials
		}
	}
	return s.IssueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}

// CurrentUser resolves the acting user for GET /api/user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
