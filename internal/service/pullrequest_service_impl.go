package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
	"github.com/vgrigoryan/pr-review-assigner/internal/repository"
)

const maxReviewers = 2

type pullRequestService struct {
	log             *zap.SugaredLogger
	pullRequestRepo repository.PullRequestRepository
	userRepo        repository.UserRepository
}

// NewPullRequestService создает новый экземпляр PullRequestService
func NewPullRequestService(
	log *zap.SugaredLogger,
	pullRequestRepo repository.PullRequestRepository,
	userRepo repository.UserRepository,
) PullRequestService {
	return &pullRequestService{
		log:             log,
		pullRequestRepo: pullRequestRepo,
		userRepo:        userRepo,
	}
}

// CreatePR создает PR и автоматически назначает до 2 активных ревьюверов
// из команды автора. Ноль кандидатов - не ошибка: PR создается без ревьюверов
func (s *pullRequestService) CreatePR(ctx context.Context, prID, name, authorID string) (*domain.PullRequest, error) {
	exists, err := s.pullRequestRepo.Exists(ctx, prID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPRExists
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.userRepo.GetActiveTeamMembers(ctx, author.TeamName, authorID)
	if err != nil {
		return nil, err
	}

	selected, err := SampleWithoutReplacement(candidates, maxReviewers)
	if err != nil {
		return nil, err
	}

	reviewerIDs := make([]string, 0, len(selected))
	for _, reviewer := range selected {
		reviewerIDs = append(reviewerIDs, reviewer.ID)
	}

	pr := &domain.PullRequest{
		ID:                prID,
		Name:              name,
		AuthorID:          authorID,
		Status:            domain.StatusOpen,
		AssignedReviewers: reviewerIDs,
	}

	if err := s.pullRequestRepo.Create(ctx, pr); err != nil {
		return nil, err
	}

	s.log.Infow("pull request created",
		"pr_id", prID,
		"author_id", authorID,
		"reviewers", reviewerIDs,
	)

	return pr, nil
}

// MergePR помечает PR как MERGED. Повторный вызов возвращает сохраненное
// состояние: merged_at второй раз не обновляется, назначения не трогаются
func (s *pullRequestService) MergePR(ctx context.Context, prID string) (*domain.PullRequest, error) {
	pr, err := s.pullRequestRepo.SetMerged(ctx, prID)
	if err != nil {
		return nil, err
	}

	s.log.Infow("pull request merged", "pr_id", prID, "merged_at", pr.MergedAt)

	return pr, nil
}

// ReassignReviewer заменяет назначенного ревьювера на случайного активного
// участника команды уходящего ревьювера. Пул кандидатов строится по команде
// старого ревьювера, а не автора: при межкомандном ревью замена сохраняет
// командную принадлежность заменяемого. Исключаются автор PR и все текущие
// ревьюверы
func (s *pullRequestService) ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	pr, err := s.pullRequestRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	if pr.IsMerged() {
		return nil, "", domain.NewCannotReassignError("cannot reassign on merged PR")
	}

	if !pr.HasReviewer(oldReviewerID) {
		return nil, "", domain.NewCannotReassignError("reviewer is not assigned to this PR")
	}

	oldReviewer, err := s.userRepo.GetByID(ctx, oldReviewerID)
	if err != nil {
		return nil, "", err
	}

	teamMembers, err := s.userRepo.GetActiveTeamMembers(ctx, oldReviewer.TeamName, "")
	if err != nil {
		return nil, "", err
	}

	excluded := make(map[string]struct{}, len(pr.AssignedReviewers)+1)
	excluded[pr.AuthorID] = struct{}{}
	for _, reviewerID := range pr.AssignedReviewers {
		excluded[reviewerID] = struct{}{}
	}

	candidates := make([]*domain.User, 0, len(teamMembers))
	for _, member := range teamMembers {
		if _, ok := excluded[member.ID]; !ok {
			candidates = append(candidates, member)
		}
	}

	if len(candidates) == 0 {
		return nil, "", domain.NewCannotReassignError("no active replacement candidate in team")
	}

	selected, err := SampleWithoutReplacement(candidates, 1)
	if err != nil {
		return nil, "", err
	}
	newReviewerID := selected[0].ID

	if err := s.pullRequestRepo.ReplaceReviewer(ctx, prID, oldReviewerID, newReviewerID); err != nil {
		return nil, "", err
	}

	updatedPR, err := s.pullRequestRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	s.log.Infow("reviewer reassigned",
		"pr_id", prID,
		"old_reviewer_id", oldReviewerID,
		"new_reviewer_id", newReviewerID,
	)

	return updatedPR, newReviewerID, nil
}
