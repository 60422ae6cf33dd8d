package repository

import (
	"context"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

// PullRequestRepository - хранилище PR и связей PR-ревьювер.
// Все read-modify-write операции над одним PR сериализуются на уровне
// хранилища (блокировка строки PR в транзакции)
type PullRequestRepository interface {
	Exists(ctx context.Context, id string) (bool, error)

	// Create сохраняет PR вместе с назначенными ревьюверами одной транзакцией
	Create(ctx context.Context, pr *domain.PullRequest) error

	// GetByID возвращает PR с загруженным списком ревьюверов
	GetByID(ctx context.Context, id string) (*domain.PullRequest, error)

	// SetMerged переводит PR в MERGED. Повторный вызов не меняет merged_at
	// и возвращает сохраненное состояние
	SetMerged(ctx context.Context, id string) (*domain.PullRequest, error)

	AddReviewer(ctx context.Context, prID string, reviewerID string) error
	RemoveReviewer(ctx context.Context, prID string, reviewerID string) error
	GetReviewersByPRID(ctx context.Context, prID string) ([]string, error)

	// ReplaceReviewer атомарно снимает старого ревьювера и назначает нового:
	// промежуточное состояние (старый снят, новый не назначен) снаружи не
	// наблюдаемо. Статус PR и факт назначения старого ревьювера
	// перепроверяются под блокировкой; для MERGED PR и уже занятого
	// кандидата возвращается CANNOT_REASSIGN
	ReplaceReviewer(ctx context.Context, prID string, oldReviewerID string, newReviewerID string) error

	GetPRsByReviewerID(ctx context.Context, reviewerID string) ([]*domain.PullRequestShort, error)
}
