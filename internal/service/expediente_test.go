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

type expedienteMocks struct {
	exps  *repoMocks.MockExpedienteRepository
	docs  *repoMocks.MockDocumentRepository
	areas *repoMocks.MockAreaRepository
	users *repoMocks.MockUserRepository
}

func newExpedienteMocks() expedienteMocks {
	return expedienteMocks{
		exps:  new(repoMocks.MockExpedienteRepository),
		docs:  new(repoMocks.MockDocumentRepository),
		areas: new(repoMocks.MockAreaRepository),
		users: new(repoMocks.MockUserRepository),
	}
}

func (m expedienteMocks) service() ExpedienteService {
	return NewExpedienteService(m.exps, m.docs, m.areas, m.users)
}

func validExpInput() ExpedienteInput {
	return ExpedienteInput{
		Number:            "EXP-2023-0044",
		State:             model.StateEnTramite,
		AreaName:          "Mesa de Partes",
		ResponsibleUserID: "user-1",
	}
}

func TestExpedienteService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("uses existing area", func(t *testing.T) {
		m := newExpedienteMocks()
		m.users.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		m.areas.On("FindByName", ctx, "Mesa de Partes").Return(&model.Area{ID: "area-1", Name: "Mesa de Partes"}, nil)
		m.exps.On("Create", ctx, mock.MatchedBy(func(e *model.Expediente) bool {
			return e.ID != "" && e.AreaID == "area-1" && !e.CreatedAt.IsZero() && e.CreatedAt.Equal(e.UpdatedAt)
		})).Return(func(ctx context.Context, e *model.Expediente) *model.Expediente { return e }, nil)

		exp, err := m.service().Create(ctx, validExpInput())
		require.NoError(t, err)
		assert.Equal(t, "area-1", exp.AreaID)
		m.areas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates the area when missing", func(t *testing.T) {
		m := newExpedienteMocks()
		m.users.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		m.areas.On("FindByName", ctx, "Mesa de Partes").Return(nil, sql.ErrNoRows)
		m.areas.On("Create", ctx, "Mesa de Partes").Return(&model.Area{ID: "area-new", Name: "Mesa de Partes"}, nil)
		m.exps.On("Create", ctx, mock.MatchedBy(func(e *model.Expediente) bool {
			return e.AreaID == "area-new"
		})).Return(func(ctx context.Context, e *model.Expediente) *model.Expediente { return e }, nil)

		exp, err := m.service().Create(ctx, validExpInput())
		require.NoError(t, err)
		assert.Equal(t, "area-new", exp.AreaID)
		m.areas.AssertExpectations(t)
	})

	t.Run("defaults state to en_tramite", func(t *testing.T) {
		m := newExpedienteMocks()
		m.users.On("FindByID", ctx, "user-1").Return(&model.User{ID: "user-1"}, nil)
		m.areas.On("FindByName", ctx, "Mesa de Partes").Return(&model.Area{ID: "area-1"}, nil)
		m.exps.On("Create", ctx, mock.MatchedBy(func(e *model.Expediente) bool {
			return e.State == model.StateEnTramite
		})).Return(func(ctx context.Context, e *model.Expediente) *model.Expediente { return e }, nil)

		in := validExpInput()
		in.State = ""
		_, err := m.service().Create(ctx, in)
		require.NoError(t, err)
	})

	t.Run("rejects unknown state", func(t *testing.T) {
		m := newExpedienteMocks()
		in := validExpInput()
		in.State = "archivado"
		_, err := m.service().Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("rejects unknown responsible user", func(t *testing.T) {
		m := newExpedienteMocks()
		m.users.On("FindByID", ctx, "user-1").Return(nil, sql.ErrNoRows)
		_, err := m.service().Create(ctx, validExpInput())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestExpedienteService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while documents exist", func(t *testing.T) {
		m := newExpedienteMocks()
		m.exps.On("FindByID", ctx, "exp-1").Return(&model.Expediente{ID: "exp-1"}, nil)
		m.docs.On("CountByExpediente", ctx, "exp-1").Return(2, nil)

		err := m.service().Delete(ctx, "exp-1")
		assert.ErrorIs(t, err, ErrExpedienteHasDocuments)
		m.exps.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes when no documents reference it", func(t *testing.T) {
		m := newExpedienteMocks()
		m.exps.On("FindByID", ctx, "exp-1").Return(&model.Expediente{ID: "exp-1"}, nil)
		m.docs.On("CountByExpediente", ctx, "exp-1").Return(0, nil)
		m.exps.On("Delete", ctx, "exp-1").Return(nil)

		require.NoError(t, m.service().Delete(ctx, "exp-1"))
		m.exps.AssertExpectations(t)
	})

	t.Run("missing expediente", func(t *testing.T) {
		m := newExpedienteMocks()
		m.exps.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)
		assert.ErrorIs(t, m.service().Delete(ctx, "nope"), ErrExpedienteNotFound)
	})
}
