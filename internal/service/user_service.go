package service

import (
	"context"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type UserService interface {
	// SetIsActive устанавливает флаг активности пользователя
	SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error)

	// GetReviewPRs получает список PR, где пользователь назначен ревьювером
	GetReviewPRs(ctx context.Context, userID string) ([]*domain.PullRequestShort, error)
}
