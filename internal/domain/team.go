package domain

import "time"

type Team struct {
	Name      string
	Members   []TeamMember
	CreatedAt time.Time
}

type TeamMember struct {
	UserID   string
	Username string
	IsActive bool
}
