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

func TestUserService_SetIsActive(t *testing.T) {
	t.Run("успешная деактивация", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPRRepo := new(MockPullRequestRepository)
		svc := NewUserService(zap.NewNop().Sugar(), mockUserRepo, mockPRRepo)

		updated := &domain.User{ID: "u1", Username: "Alice", TeamName: "backend", IsActive: false}

		mockUserRepo.On("SetIsActive", mock.Anything, "u1", false).Return(nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(updated, nil).Once()

		result, err := svc.SetIsActive(context.Background(), "u1", false)

		require.NoError(t, err)
		assert.False(t, result.IsActive)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPRRepo := new(MockPullRequestRepository)
		svc := NewUserService(zap.NewNop().Sugar(), mockUserRepo, mockPRRepo)

		mockUserRepo.On("SetIsActive", mock.Anything, "u999", true).
			Return(domain.NewNotFoundError("user with id u999")).Once()

		result, err := svc.SetIsActive(context.Background(), "u999", true)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_GetReviewPRs(t *testing.T) {
	t.Run("возвращает PR, где пользователь ревьювер", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPRRepo := new(MockPullRequestRepository)
		svc := NewUserService(zap.NewNop().Sugar(), mockUserRepo, mockPRRepo)

		user := &domain.User{ID: "u2", Username: "Bob", TeamName: "backend", IsActive: true}
		prs := []*domain.PullRequestShort{
			{ID: "pr-1", Name: "Add feature", AuthorID: "u1", Status: domain.StatusOpen},
			{ID: "pr-2", Name: "Fix bug", AuthorID: "u3", Status: domain.StatusMerged},
		}

		mockUserRepo.On("GetByID", mock.Anything, "u2").Return(user, nil).Once()
		mockPRRepo.On("GetPRsByReviewerID", mock.Anything, "u2").Return(prs, nil).Once()

		result, err := svc.GetReviewPRs(context.Background(), "u2")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		mockUserRepo.AssertExpectations(t)
		mockPRRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockPRRepo := new(MockPullRequestRepository)
		svc := NewUserService(zap.NewNop().Sugar(), mockUserRepo, mockPRRepo)

		mockUserRepo.On("GetByID", mock.Anything, "u999").
			Return(nil, domain.NewNotFoundError("user with id u999")).Once()

		result, err := svc.GetReviewPRs(context.Background(), "u999")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockPRRepo.AssertNotCalled(t, "GetPRsByReviewerID", mock.Anything, mock.Anything)
	})
}
