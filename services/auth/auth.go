// File: services/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	userRepo "geolumiere/database/repository/user"
	"geolumiere/models"
	"geolumiere/utils"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionKeyPrefix = "admin_session:"

// AuthService manages back-office sessions: bcrypt-checked login issuing an
// HS256 JWT whose hash is allow-listed in Redis, and logout revoking it.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	IsSessionActive(ctx context.Context, token string) (bool, error)
}

type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Sessions *redis.Client
	TokenTTL time.Duration
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	token, err := utils.GenerateToken(user.ID, user.Email, ttl)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	key := sessionKeyPrefix + utils.HashToken(token)
	if err := s.Sessions.Set(ctx, key, user.ID, ttl).Err(); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	return token, user, nil
}

func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	key := sessionKeyPrefix + utils.HashToken(token)
	return s.Sessions.Del(ctx, key).Err()
}

// IsSessionActive reports whether the token's hash is still allow-listed.
// A valid signature alone is not enough: logout revokes immediately.
func (s *DefaultAuthService) IsSessionActive(ctx context.Context, token string) (bool, error) {
	key := sessionKeyPrefix + utils.HashToken(token)
	n, err := s.Sessions.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
