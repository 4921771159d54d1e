package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expedientes/internal/auth"
	"expedientes/internal/model"
	repoMocks "expedientes/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: "user-1", Username: "jperez", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "jperez").Return(user, nil)

		res, err := NewAuthService(users, issuer).Login(ctx, "jperez", "correcthorse")
		require.NoError(t, err)
		assert.Equal(t, "user-1", res.User.ID)

		claims, err := issuer.Verify(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "jperez", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "jperez").Return(user, nil)

		_, err := NewAuthService(users, issuer).Login(ctx, "jperez", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		users.On("FindByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)

		_, err := NewAuthService(users, issuer).Login(ctx, "ghost", "anything")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank credentials", func(t *testing.T) {
		users := new(repoMocks.MockUserRepository)
		_, err := NewAuthService(users, issuer).Login(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		users.AssertNotCalled(t, "FindByUsername", ctx, "")
	})
}
