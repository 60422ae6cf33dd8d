package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

// NewUserRepositoryWithTx позволяет выполнять операции над пользователями
// внутри чужой транзакции (создание команды вместе с участниками)
func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) CreateOrUpdate(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, team_name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    team_name = EXCLUDED.team_name,
		    is_active = EXCLUDED.is_active,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query,
		user.ID, user.Username, user.TeamName, user.IsActive, time.Now(),
	).Scan(&user.CreatedAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	} else {
		user.UpdatedAt = nil
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, team_name, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.TeamName,
		&user.IsActive,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user with id " + id)
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}

	return user, nil
}

func (r *userRepository) GetActiveTeamMembers(ctx context.Context, teamName string, excludeUserID string) ([]*domain.User, error) {
	query := `
		SELECT id, username, team_name, is_active, created_at, updated_at
		FROM users
		WHERE team_name = $1 AND is_active = TRUE AND id <> $2
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, teamName, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("select active team members: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.TeamName,
			&user.IsActive,
			&user.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			user.UpdatedAt = &updatedAt.Time
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) SetIsActive(ctx context.Context, userID string, isActive bool) error {
	result, err := r.executor.ExecContext(ctx,
		"UPDATE users SET is_active = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1",
		userID, isActive,
	)
	if err != nil {
		return fmt.Errorf("update user activity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError("user with id " + userID)
	}

	return nil
}
