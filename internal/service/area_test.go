package service

import (
	"context"
	"database/sql"
	"testing"

	"expedientes/internal/model"
	repoMocks "expedientes/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAreaService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new area", func(t *testing.T) {
		areas := new(repoMocks.MockAreaRepository)
		areas.On("FindByName", ctx, "Tesorería").Return(nil, sql.ErrNoRows)
		areas.On("Create", ctx, "Tesorería").Return(&model.Area{ID: "area-1", Name: "Tesorería"}, nil)

		area, err := NewAreaService(areas).Create(ctx, "  Tesorería ")
		require.NoError(t, err)
		assert.Equal(t, "Tesorería", area.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		areas := new(repoMocks.MockAreaRepository)
		areas.On("FindByName", ctx, "Tesorería").Return(&model.Area{ID: "area-1"}, nil)

		_, err := NewAreaService(areas).Create(ctx, "Tesorería")
		assert.ErrorIs(t, err, ErrAreaExists)
		areas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewAreaService(new(repoMocks.MockAreaRepository)).Create(ctx, "   ")
		assert.ErrorIs(t, err, ErrAreaNameRequired)
	})
}

func TestAreaService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while expedientes reference it", func(t *testing.T) {
		areas := new(repoMocks.MockAreaRepository)
		areas.On("FindByID", ctx, "area-1").Return(&model.Area{ID: "area-1"}, nil)
		areas.On("CountExpedientes", ctx, "area-1").Return(3, nil)

		err := NewAreaService(areas).Delete(ctx, "area-1")
		assert.ErrorIs(t, err, ErrAreaHasExpedientes)
		areas.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unreferenced area", func(t *testing.T) {
		areas := new(repoMocks.MockAreaRepository)
		areas.On("FindByID", ctx, "area-1").Return(&model.Area{ID: "area-1"}, nil)
		areas.On("CountExpedientes", ctx, "area-1").Return(0, nil)
		areas.On("Delete", ctx, "area-1").Return(nil)

		require.NoError(t, NewAreaService(areas).Delete(ctx, "area-1"))
		areas.AssertExpectations(t)
	})

	t.Run("missing area", func(t *testing.T) {
		areas := new(repoMocks.MockAreaRepository)
		areas.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, NewAreaService(areas).Delete(ctx, "nope"), ErrAreaNotFound)
	})
}
