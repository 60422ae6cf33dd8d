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

const pgUniqueViolation = "23505"

type pullRequestRepository struct {
	db *sql.DB
}

func NewPullRequestRepository(db *sql.DB) *pullRequestRepository {
	return &pullRequestRepository{db: db}
}

func (r *pullRequestRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM pull_requests WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pull request existence: %w", err)
	}
	return exists, nil
}

// Create сохраняет PR вместе со строками назначений одной транзакцией:
// при сбое на любом шаге снаружи не видно частично созданного PR
func (r *pullRequestRepository) Create(ctx context.Context, pr *domain.PullRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO pull_requests (id, name, author_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	now := time.Now()
	err = tx.QueryRowContext(ctx, query, pr.ID, pr.Name, pr.AuthorID, string(pr.Status), now).
		Scan(&pr.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrPRExists
		}
		return fmt.Errorf("insert pull request: %w", err)
	}

	for _, reviewerID := range pr.AssignedReviewers {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO pull_request_reviewers (pull_request_id, reviewer_id, assigned_at) VALUES ($1, $2, $3)",
			pr.ID, reviewerID, now,
		)
		if err != nil {
			return fmt.Errorf("insert reviewer %s: %w", reviewerID, err)
		}
	}

	return tx.Commit()
}

func (r *pullRequestRepository) GetByID(ctx context.Context, id string) (*domain.PullRequest, error) {
	return getPullRequest(ctx, r.db, id)
}

func getPullRequest(ctx context.Context, executor DBExecutor, id string) (*domain.PullRequest, error) {
	query := `
		SELECT id, name, author_id, status, created_at, merged_at
		FROM pull_requests
		WHERE id = $1
	`

	pr := &domain.PullRequest{}
	var status string
	var mergedAt sql.NullTime
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&pr.ID,
		&pr.Name,
		&pr.AuthorID,
		&status,
		&pr.CreatedAt,
		&mergedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("pull request with id " + id)
		}
		return nil, fmt.Errorf("select pull request: %w", err)
	}

	pr.Status = domain.Status(status)
	if mergedAt.Valid {
		pr.MergedAt = &mergedAt.Time
	}

	reviewers, err := getReviewers(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	pr.AssignedReviewers = reviewers

	return pr, nil
}

// SetMerged переводит PR в MERGED. Строка PR блокируется на время транзакции,
// повторный вызов возвращает сохраненное состояние без изменения merged_at
func (r *pullRequestRepository) SetMerged(ctx context.Context, id string) (*domain.PullRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM pull_requests WHERE id = $1 FOR UPDATE", id,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("pull request with id " + id)
		}
		return nil, fmt.Errorf("lock pull request: %w", err)
	}

	if domain.Status(status) != domain.StatusMerged {
		_, err = tx.ExecContext(ctx,
			"UPDATE pull_requests SET status = $2, merged_at = $3 WHERE id = $1",
			id, string(domain.StatusMerged), time.Now(),
		)
		if err != nil {
			return nil, fmt.Errorf("update pull request status: %w", err)
		}
	}

	pr, err := getPullRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return pr, nil
}

func (r *pullRequestRepository) AddReviewer(ctx context.Context, prID string, reviewerID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pull_request_reviewers (pull_request_id, reviewer_id, assigned_at) VALUES ($1, $2, $3)",
		prID, reviewerID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("add reviewer: %w", err)
	}
	return nil
}

func (r *pullRequestRepository) RemoveReviewer(ctx context.Context, prID string, reviewerID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM pull_request_reviewers WHERE pull_request_id = $1 AND reviewer_id = $2",
		prID, reviewerID,
	)
	if err != nil {
		return fmt.Errorf("remove reviewer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewCannotReassignError("reviewer is not assigned to this PR")
	}

	return nil
}

func (r *pullRequestRepository) GetReviewersByPRID(ctx context.Context, prID string) ([]string, error) {
	return getReviewers(ctx, r.db, prID)
}

func getReviewers(ctx context.Context, executor DBExecutor, prID string) ([]string, error) {
	query := `
		SELECT reviewer_id
		FROM pull_request_reviewers
		WHERE pull_request_id = $1
		ORDER BY assigned_at, reviewer_id
	`

	rows, err := executor.QueryContext(ctx, query, prID)
	if err != nil {
		return nil, fmt.Errorf("select reviewers: %w", err)
	}
	defer rows.Close()

	var reviewers []string
	for rows.Next() {
		var reviewerID string
		if err := rows.Scan(&reviewerID); err != nil {
			return nil, err
		}
		reviewers = append(reviewers, reviewerID)
	}

	return reviewers, rows.Err()
}

// ReplaceReviewer снимает старого ревьювера и назначает нового одной
// транзакцией под блокировкой строки PR: конкурентные reassign по одному
// PR выполняются последовательно, промежуточное состояние не наблюдаемо.
// Предусловия (PR открыт, старый ревьювер назначен) перепроверяются под
// блокировкой: проверки сервиса до транзакции могли устареть из-за
// конкурентного merge или reassign
func (r *pullRequestRepository) ReplaceReviewer(ctx context.Context, prID string, oldReviewerID string, newReviewerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx,
		"SELECT status FROM pull_requests WHERE id = $1 FOR UPDATE", prID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError("pull request with id " + prID)
		}
		return fmt.Errorf("lock pull request: %w", err)
	}

	if domain.Status(status) == domain.StatusMerged {
		return domain.NewCannotReassignError("cannot reassign on merged PR")
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM pull_request_reviewers WHERE pull_request_id = $1 AND reviewer_id = $2",
		prID, oldReviewerID,
	)
	if err != nil {
		return fmt.Errorf("remove old reviewer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewCannotReassignError("reviewer is not assigned to this PR")
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO pull_request_reviewers (pull_request_id, reviewer_id, assigned_at) VALUES ($1, $2, $3)",
		prID, newReviewerID, time.Now(),
	)
	if err != nil {
		// Конкурентный reassign уже назначил этого же кандидата
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.NewCannotReassignError("replacement reviewer is already assigned to this PR")
		}
		return fmt.Errorf("add new reviewer: %w", err)
	}

	return tx.Commit()
}

func (r *pullRequestRepository) GetPRsByReviewerID(ctx context.Context, reviewerID string) ([]*domain.PullRequestShort, error) {
	query := `
		SELECT pr.id, pr.name, pr.author_id, pr.status
		FROM pull_request_reviewers prr
		JOIN pull_requests pr ON prr.pull_request_id = pr.id
		WHERE prr.reviewer_id = $1
		ORDER BY pr.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("select reviewed pull requests: %w", err)
	}
	defer rows.Close()

	var prs []*domain.PullRequestShort
	for rows.Next() {
		pr := &domain.PullRequestShort{}
		var status string
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.AuthorID, &status); err != nil {
			return nil, err
		}
		pr.Status = domain.Status(status)
		prs = append(prs, pr)
	}

	return prs, rows.Err()
}
