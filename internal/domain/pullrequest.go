package domain

import "time"

type PullRequest struct {
	ID                string
	Name              string
	AuthorID          string
	Status            Status
	AssignedReviewers []string
	CreatedAt         time.Time
	MergedAt          *time.Time
}

type PullRequestShort struct {
	ID       string
	Name     string
	AuthorID string
	Status   Status
}

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusMerged Status = "MERGED"
)

// IsMerged сообщает, находится ли PR в терминальном статусе
func (pr *PullRequest) IsMerged() bool {
	return pr.Status == StatusMerged
}

// HasReviewer проверяет, назначен ли пользователь ревьювером этого PR
func (pr *PullRequest) HasReviewer(userID string) bool {
	for _, id := range pr.AssignedReviewers {
		if id == userID {
			return true
		}
	}
	return false
}
