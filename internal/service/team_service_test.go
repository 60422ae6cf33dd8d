package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		svc := NewTeamService(zap.NewNop().Sugar(), mockTeamRepo)

		team := &domain.Team{
			Name: "backend",
			Members: []domain.TeamMember{
				{UserID: "u1", Username: "Alice", IsActive: true},
				{UserID: "u2", Username: "Bob", IsActive: false},
			},
		}

		mockTeamRepo.On("Exists", mock.Anything, "backend").Return(false, nil).Once()
		mockTeamRepo.On("Create", mock.Anything, team).Return(nil).Once()
		mockTeamRepo.On("GetByName", mock.Anything, "backend").Return(team, nil).Once()

		result, err := svc.CreateTeam(context.Background(), team)

		require.NoError(t, err)
		assert.Equal(t, "backend", result.Name)
		assert.Len(t, result.Members, 2)
		mockTeamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: команда уже существует", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		svc := NewTeamService(zap.NewNop().Sugar(), mockTeamRepo)

		mockTeamRepo.On("Exists", mock.Anything, "backend").Return(true, nil).Once()

		result, err := svc.CreateTeam(context.Background(), &domain.Team{Name: "backend"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrTeamExists)
		mockTeamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		svc := NewTeamService(zap.NewNop().Sugar(), mockTeamRepo)

		mockTeamRepo.On("GetByName", mock.Anything, "ghost").
			Return(nil, domain.NewNotFoundError("team with name ghost")).Once()

		result, err := svc.GetTeam(context.Background(), "ghost")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
