package repository

import (
	"context"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type TeamRepository interface {
	Exists(ctx context.Context, name string) (bool, error)

	// Create сохраняет команду и ее участников одной транзакцией
	Create(ctx context.Context, team *domain.Team) error

	// GetByName возвращает команду с полным составом участников
	GetByName(ctx context.Context, name string) (*domain.Team, error)
}
