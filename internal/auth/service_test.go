package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/reverseludo/admin-api/internal/domain"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) GetPasswordHash(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

type staticAllowList []string

func (l staticAllowList) IsAdminEmail(email string) bool {
	for _, e := range l {
		if e == email {
			return true
		}
	}
	return false
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	allowList := staticAllowList{"admin@reverseludo.app"}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		repo := new(mockAccountRepo)
		repo.On("GetPasswordHash", mock.Anything, "admin@reverseludo.app").
			Return(hashFor(t, "correct-horse"), nil)

		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		session, err := svc.Login(context.Background(), "admin@reverseludo.app", "correct-horse")

		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "admin@reverseludo.app", session.Email)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
		repo.AssertExpectations(t)
	})

	t.Run("rejects email outside the allow-list without touching the repo", func(t *testing.T) {
		repo := new(mockAccountRepo)

		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		_, err := svc.Login(context.Background(), "intruder@example.com", "whatever")

		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
		repo.AssertNotCalled(t, "GetPasswordHash", mock.Anything, mock.Anything)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(mockAccountRepo)
		repo.On("GetPasswordHash", mock.Anything, "admin@reverseludo.app").
			Return(hashFor(t, "correct-horse"), nil)

		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		_, err := svc.Login(context.Background(), "admin@reverseludo.app", "wrong-horse")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("maps unknown account to invalid credentials", func(t *testing.T) {
		repo := new(mockAccountRepo)
		repo.On("GetPasswordHash", mock.Anything, "admin@reverseludo.app").
			Return("", domain.ErrInvalidCredentials)

		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		_, err := svc.Login(context.Background(), "admin@reverseludo.app", "anything")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestVerifyToken(t *testing.T) {
	allowList := staticAllowList{"admin@reverseludo.app"}
	repo := new(mockAccountRepo)
	repo.On("GetPasswordHash", mock.Anything, mock.Anything).
		Return(hashFor(t, "pw"), nil)

	t.Run("round-trips a freshly issued token", func(t *testing.T) {
		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		session, err := svc.Login(context.Background(), "admin@reverseludo.app", "pw")
		require.NoError(t, err)

		email, err := svc.VerifyToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin@reverseludo.app", email)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		issuer := NewService(repo, allowList, "other-secret", time.Hour)
		session, err := issuer.Login(context.Background(), "admin@reverseludo.app", "pw")
		require.NoError(t, err)

		verifier := NewService(repo, allowList, "unit-test-secret", time.Hour)
		_, err = verifier.VerifyToken(session.Token)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		svc := NewService(repo, allowList, "unit-test-secret", -time.Minute)
		session, err := svc.Login(context.Background(), "admin@reverseludo.app", "pw")
		require.NoError(t, err)

		_, err = svc.VerifyToken(session.Token)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		_, err := svc.VerifyToken("not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("rejects token whose email fell off the allow-list", func(t *testing.T) {
		svc := NewService(repo, allowList, "unit-test-secret", time.Hour)
		session, err := svc.Login(context.Background(), "admin@reverseludo.app", "pw")
		require.NoError(t, err)

		revoked := NewService(repo, staticAllowList{}, "unit-test-secret", time.Hour)
		_, err = revoked.VerifyToken(session.Token)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}
