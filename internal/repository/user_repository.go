package repository

import (
	"context"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

// UserRepository - справочник пользователей. Движок назначения только читает
// из него; состояние пользователей меняется операциями команд и setIsActive
type UserRepository interface {
	// CreateOrUpdate создает пользователя или обновляет его имя, команду и
	// флаг активности, если такой id уже есть
	CreateOrUpdate(ctx context.Context, user *domain.User) error

	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetActiveTeamMembers возвращает только активных участников команды,
	// исключая excludeUserID, если он задан
	GetActiveTeamMembers(ctx context.Context, teamName string, excludeUserID string) ([]*domain.User, error)

	SetIsActive(ctx context.Context, userID string, isActive bool) error
}
