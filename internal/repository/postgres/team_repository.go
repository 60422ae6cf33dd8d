package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1)", name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check team existence: %w", err)
	}
	return exists, nil
}

// Create сохраняет команду и апсертит ее участников одной транзакцией
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		"INSERT INTO teams (name, created_at) VALUES ($1, $2) RETURNING created_at",
		team.Name, time.Now(),
	).Scan(&team.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrTeamExists
		}
		return fmt.Errorf("insert team: %w", err)
	}

	userRepo := NewUserRepositoryWithTx(tx)
	for _, member := range team.Members {
		user := &domain.User{
			ID:       member.UserID,
			Username: member.Username,
			TeamName: team.Name,
			IsActive: member.IsActive,
		}
		if err := userRepo.CreateOrUpdate(ctx, user); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	team := &domain.Team{}
	err := r.db.QueryRowContext(ctx,
		"SELECT name, created_at FROM teams WHERE name = $1", name,
	).Scan(&team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, fmt.Errorf("select team: %w", err)
	}

	query := `
		SELECT id, username, is_active
		FROM users
		WHERE team_name = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}
	defer rows.Close()

	team.Members = make([]domain.TeamMember, 0)
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.UserID, &member.Username, &member.IsActive); err != nil {
			return nil, err
		}
		team.Members = append(team.Members, member)
	}

	return team, rows.Err()
}
