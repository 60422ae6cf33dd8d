package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
	"github.com/vgrigoryan/pr-review-assigner/internal/repository"
)

type userService struct {
	log             *zap.SugaredLogger
	userRepo        repository.UserRepository
	pullRequestRepo repository.PullRequestRepository
}

func NewUserService(
	log *zap.SugaredLogger,
	userRepo repository.UserRepository,
	pullRequestRepo repository.PullRequestRepository,
) UserService {
	return &userService{
		log:             log,
		userRepo:        userRepo,
		pullRequestRepo: pullRequestRepo,
	}
}

func (s *userService) SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	if err := s.userRepo.SetIsActive(ctx, userID, isActive); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.Infow("user activity changed", "user_id", userID, "is_active", isActive)

	return user, nil
}

func (s *userService) GetReviewPRs(ctx context.Context, userID string) ([]*domain.PullRequestShort, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.pullRequestRepo.GetPRsByReviewerID(ctx, userID)
}
