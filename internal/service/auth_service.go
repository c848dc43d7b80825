package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/haghnazari/Havirkesht/internal/config"
	"github.com/haghnazari/Havirkesht/internal/middleware"
	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

// TokenPair is the login/refresh response body.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService issues and revokes tokens. Access tokens are self-contained
// JWTs; refresh tokens are opaque and live in the TokenStore so they can
// be revoked.
type AuthService struct {
	users  *repository.UserRepository
	roles  *repository.RoleRepository
	tokens TokenStore
	cfg    *config.Config
}

func NewAuthService(users *repository.UserRepository, roles *repository.RoleRepository, tokens TokenStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, roles: roles, tokens: tokens, cfg: cfg}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, ErrUserDisabled
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the old one is revoked before the new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, ok, err := s.tokens.Lookup(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidRefresh
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if user.Disabled {
		return nil, ErrUserDisabled
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token. Unknown tokens are treated as already
// logged out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}

// CurrentUser loads the account behind an access token's uid claim.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("load role %d: %w", user.RoleID, err)
	}

	now := time.Now()
	expire := s.cfg.JWT.AccessTokenExpire
	claims := &middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Scopes:   role.Scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh := uuid.New().String()
	if err := s.tokens.Save(ctx, refresh, user.ID, s.cfg.JWT.RefreshTokenExpire); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(expire.Seconds()),
	}, nil
}
