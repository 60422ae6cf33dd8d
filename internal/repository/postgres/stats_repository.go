package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetReviewerStats(ctx context.Context) ([]*domain.ReviewerStat, error) {
	query := `
		SELECT u.id, u.username, COUNT(prr.reviewer_id) AS assignment_count
		FROM users u
		LEFT JOIN pull_request_reviewers prr ON u.id = prr.reviewer_id
		GROUP BY u.id, u.username
		ORDER BY assignment_count DESC, u.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select reviewer stats: %w", err)
	}
	defer rows.Close()

	var stats []*domain.ReviewerStat
	for rows.Next() {
		stat := &domain.ReviewerStat{}
		if err := rows.Scan(&stat.UserID, &stat.Username, &stat.AssignmentCount); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetPRStatsByStatus(ctx context.Context) ([]*domain.PRStatusStat, error) {
	query := `
		SELECT status, COUNT(id) AS count
		FROM pull_requests
		GROUP BY status
		ORDER BY status
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select pull request stats: %w", err)
	}
	defer rows.Close()

	var stats []*domain.PRStatusStat
	for rows.Next() {
		stat := &domain.PRStatusStat{}
		if err := rows.Scan(&stat.Status, &stat.Count); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
