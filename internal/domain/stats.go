package domain

// ReviewerStat - количество назначений на ревью по пользователю
type ReviewerStat struct {
	UserID          string
	Username        string
	AssignmentCount int
}

// PRStatusStat - количество PR в каждом статусе
type PRStatusStat struct {
	Status string
	Count  int
}
