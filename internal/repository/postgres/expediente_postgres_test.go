package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

var expCols = []string{"id", "number", "state", "created_at", "updated_at", "responsible_user_id", "area_id"}

func TestExpedientePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExpedientePostgres(db)
	ctx := context.Background()

	now := time.Now()
	exp := &model.Expediente{
		ID:                "exp-1",
		Number:            "EXP-001",
		State:             model.StateEnTramite,
		CreatedAt:         now,
		UpdatedAt:         now,
		ResponsibleUserID: "user-1",
		AreaID:            "area-1",
	}

	rows := sqlmock.NewRows(expCols).
		AddRow(exp.ID, exp.Number, exp.State, exp.CreatedAt, exp.UpdatedAt, exp.ResponsibleUserID, exp.AreaID)

	mock.ExpectQuery("INSERT INTO expedientes").
		WithArgs(exp.ID, exp.Number, exp.State, exp.CreatedAt, exp.UpdatedAt, exp.ResponsibleUserID, exp.AreaID).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, exp)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "EXP-001", result.Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpedientePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExpedientePostgres(db)
	ctx := context.Background()

	now := time.Now()
	exp := &model.Expediente{
		ID:                "exp-1",
		Number:            "EXP-001",
		State:             model.StateCerrado,
		UpdatedAt:         now,
		ResponsibleUserID: "user-1",
		AreaID:            "area-2",
	}

	rows := sqlmock.NewRows(expCols).
		AddRow(exp.ID, exp.Number, exp.State, now, now, exp.ResponsibleUserID, exp.AreaID)

	mock.ExpectQuery("UPDATE expedientes").
		WithArgs(exp.ID, exp.Number, exp.State, exp.ResponsibleUserID, exp.AreaID, exp.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Update(ctx, exp)

	assert.NoError(t, err)
	assert.Equal(t, model.StateCerrado, result.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpedientePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExpedientePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM expedientes`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	rows := sqlmock.NewRows(append(append([]string{}, expCols...), "name", "username")).
		AddRow("exp-1", "EXP-001", model.StateEnTramite, now, now, "user-1", "area-1", "Logística", "admin")

	mock.ExpectQuery("FROM expedientes e(.+)ORDER BY e.created_at DESC").
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Logística", res.Items[0].AreaName)
	assert.Equal(t, "admin", res.Items[0].ResponsibleUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpedientePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExpedientePostgres(db)
	ctx := context.Background()

	t.Run("removes row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM expedientes WHERE id = ?").
			WithArgs("exp-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "exp-1"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM expedientes WHERE id = ?").
			WithArgs("gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "gone"), sql.ErrNoRows)
	})
}

func TestExpedientePostgres_TouchUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExpedientePostgres(db)
	ctx := context.Background()
	at := time.Now()

	t.Run("touches row", func(t *testing.T) {
		mock.ExpectExec("UPDATE expedientes SET updated_at = ?").
			WithArgs("exp-1", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.TouchUpdatedAt(ctx, "exp-1", at))
	})

	t.Run("expediente gone", func(t *testing.T) {
		mock.ExpectExec("UPDATE expedientes SET updated_at = ?").
			WithArgs("gone", at).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.TouchUpdatedAt(ctx, "gone", at), sql.ErrNoRows)
	})
}
