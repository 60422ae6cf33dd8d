package service

import (
	"context"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type PullRequestService interface {
	// CreatePR создает PR и автоматически назначает до 2 активных
	// ревьюверов из команды автора
	CreatePR(ctx context.Context, prID, name, authorID string) (*domain.PullRequest, error)

	// MergePR помечает PR как MERGED (идемпотентная операция)
	MergePR(ctx context.Context, prID string) (*domain.PullRequest, error)

	// ReassignReviewer заменяет назначенного ревьювера на другого активного
	// участника его команды; возвращает обновленный PR и id замены
	ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error)
}
