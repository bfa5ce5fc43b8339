package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
)

// Session describes an issued admin session.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service defines the interface for admin authentication.
type Service interface {
	// Login verifies the email against the allow-list and the password
	// against the stored bcrypt hash, then issues a signed session token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// VerifyToken validates a bearer token and returns the admin email it
	// was issued to.
	VerifyToken(token string) (string, error)
}

// AllowList gates which emails may log in at all.
type AllowList interface {
	IsAdminEmail(email string) bool
}

type service struct {
	repo      repository.AdminAccount
	allowList AllowList
	secret    []byte
	ttl       time.Duration
}

// NewService creates a new auth service.
func NewService(repo repository.AdminAccount, allowList AllowList, secret string, ttl time.Duration) Service {
	return &service{
		repo:      repo,
		allowList: allowList,
		secret:    []byte(secret),
		ttl:       ttl,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	log := logger.FromContext(ctx)

	// The allow-list is checked before credentials so removed admins are
	// locked out even while their account row still exists.
	if !s.allowList.IsAdminEmail(email) {
		log.Warn("login rejected: email not on allow-list", "email", email)
		return nil, domain.ErrNotAuthorized
	}

	hash, err := s.repo.GetPasswordHash(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		log.Warn("login rejected: bad password", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		Issuer:    "reverse-ludo-admin",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Info("admin logged in", "email", email)
	return &Session{Token: token, Email: email, ExpiresAt: expiresAt}, nil
}

func (s *service) VerifyToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrNotAuthorized
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrNotAuthorized
	}

	// Tokens outlive allow-list edits; re-check so removals take effect
	// before expiry.
	if !s.allowList.IsAdminEmail(claims.Subject) {
		return "", domain.ErrNotAuthorized
	}

	return claims.Subject, nil
}
