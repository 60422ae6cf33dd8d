package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateOrUpdate(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetActiveTeamMembers(ctx context.Context, teamName string, excludeUserID string) ([]*domain.User, error) {
	args := m.Called(ctx, teamName, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetIsActive(ctx context.Context, userID string, isActive bool) error {
	args := m.Called(ctx, userID, isActive)
	return args.Error(0)
}

type MockPullRequestRepository struct {
	mock.Mock
}

func (m *MockPullRequestRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPullRequestRepository) Create(ctx context.Context, pr *domain.PullRequest) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func (m *MockPullRequestRepository) GetByID(ctx context.Context, id string) (*domain.PullRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *MockPullRequestRepository) SetMerged(ctx context.Context, id string) (*domain.PullRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *MockPullRequestRepository) AddReviewer(ctx context.Context, prID string, reviewerID string) error {
	args := m.Called(ctx, prID, reviewerID)
	return args.Error(0)
}

func (m *MockPullRequestRepository) RemoveReviewer(ctx context.Context, prID string, reviewerID string) error {
	args := m.Called(ctx, prID, reviewerID)
	return args.Error(0)
}

func (m *MockPullRequestRepository) GetReviewersByPRID(ctx context.Context, prID string) ([]string, error) {
	args := m.Called(ctx, prID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPullRequestRepository) ReplaceReviewer(ctx context.Context, prID string, oldReviewerID string, newReviewerID string) error {
	args := m.Called(ctx, prID, oldReviewerID, newReviewerID)
	return args.Error(0)
}

func (m *MockPullRequestRepository) GetPRsByReviewerID(ctx context.Context, reviewerID string) ([]*domain.PullRequestShort, error) {
	args := m.Called(ctx, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PullRequestShort), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetReviewerStats(ctx context.Context) ([]*domain.ReviewerStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewerStat), args.Error(1)
}

func (m *MockStatsRepository) GetPRStatsByStatus(ctx context.Context) ([]*domain.PRStatusStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PRStatusStat), args.Error(1)
}
