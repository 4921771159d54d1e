package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

var docCols = []string{"id", "expediente_id", "name", "doc_type", "date", "responsible_user_id", "area_id", "file_path", "deleted_at"}

var docJoinedCols = append(append([]string{}, docCols...), "number", "name", "username")

func docRow(id string, deletedAt driver.Value) []driver.Value {
	return []driver.Value{id, "exp-1", "Contrato", "PDF", time.Now(), "user-1", "area-1", "/files/contrato.pdf", deletedAt}
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	date := time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)
	doc := &model.Document{
		ID:                "doc-1",
		ExpedienteID:      "exp-1",
		Name:              "Contrato",
		DocType:           "PDF",
		Date:              date,
		ResponsibleUserID: "user-1",
		AreaID:            "area-1",
		FilePath:          "/files/contrato.pdf",
	}

	rows := sqlmock.NewRows(docCols).
		AddRow(doc.ID, doc.ExpedienteID, doc.Name, doc.DocType, doc.Date, doc.ResponsibleUserID, doc.AreaID, doc.FilePath, nil)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.ExpedienteID, doc.Name, doc.DocType, doc.Date, doc.ResponsibleUserID, doc.AreaID, doc.FilePath).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.Nil(t, result.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found trashed", func(t *testing.T) {
		deleted := time.Now()
		rows := sqlmock.NewRows(docCols).AddRow(docRow("doc-1", deleted)...)

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, "doc-1")

		require.NoError(t, err)
		assert.True(t, doc.Trashed())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents WHERE deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows(docJoinedCols).
		AddRow(append(docRow("doc-1", nil), "EXP-001", "Logística", "admin")...)

	mock.ExpectQuery(`deleted_at IS NULL(.+)ORDER BY d.date DESC`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.ListActive(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "EXP-001", res.Items[0].ExpedienteNumber)
	assert.Equal(t, "Logística", res.Items[0].AreaName)
	assert.Equal(t, "admin", res.Items[0].ResponsibleUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListTrashed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents WHERE deleted_at IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	deleted := time.Now()
	rows := sqlmock.NewRows(docJoinedCols).
		AddRow(append(docRow("doc-2", deleted), "EXP-002", "Legal", "admin")...)

	mock.ExpectQuery(`deleted_at IS NOT NULL(.+)ORDER BY d.deleted_at DESC`).
		WithArgs(10, 0).
		WillReturnRows(rows)

	res, err := repo.ListTrashed(ctx, repository.PageQuery{Limit: 10, Offset: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].Trashed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListByExpediente(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(docJoinedCols).
		AddRow(append(docRow("doc-1", nil), "EXP-001", "Logística", "admin")...).
		AddRow(append(docRow("doc-3", nil), "EXP-001", "Logística", "admin")...)

	mock.ExpectQuery(`WHERE d.expediente_id = (.+) AND d.deleted_at IS NULL`).
		WithArgs("exp-1").
		WillReturnRows(rows)

	items, err := repo.ListByExpediente(ctx, "exp-1")

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_SoftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()
	at := time.Now()

	t.Run("stamps active row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET deleted_at = (.+) WHERE id = (.+) AND deleted_at IS NULL`).
			WithArgs("doc-1", at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SoftDelete(ctx, "doc-1", at))
	})

	t.Run("already trashed or missing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET deleted_at = (.+) WHERE id = (.+) AND deleted_at IS NULL`).
			WithArgs("doc-1", at).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(ctx, "doc-1", at), sql.ErrNoRows)
	})
}

func TestDocumentPostgres_Restore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("clears trashed row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET deleted_at = NULL WHERE id = (.+) AND deleted_at IS NOT NULL`).
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Restore(ctx, "doc-1"))
	})

	t.Run("not in trash", func(t *testing.T) {
		mock.ExpectExec(`UPDATE documents SET deleted_at = NULL`).
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Restore(ctx, "doc-1"), sql.ErrNoRows)
	})
}

func TestDocumentPostgres_Purge(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("removes row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Purge(ctx, "doc-1"))
	})

	t.Run("second purge reports missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Purge(ctx, "doc-1"), sql.ErrNoRows)
	})
}

func TestDocumentPostgres_CountByExpediente(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	// The guard count includes trashed documents, so there is no deleted_at
	// filter in the query.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents WHERE expediente_id = ?`).
		WithArgs("exp-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountByExpediente(ctx, "exp-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
