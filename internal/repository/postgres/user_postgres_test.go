package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPostgres_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username = ?").
			WithArgs("jperez").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
				AddRow("user-1", "jperez", "$2a$10$hash", time.Now()))

		user, err := repo.FindByUsername(ctx, "jperez")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, password_hash, created_at FROM users WHERE username = ?").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.FindByUsername(ctx, "ghost")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})
}

func TestUserPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)

	mock.ExpectQuery("FROM users ORDER BY username").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("user-2", "aquispe", "h2", time.Now()).
			AddRow("user-1", "jperez", "h1", time.Now()))

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "aquispe", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
