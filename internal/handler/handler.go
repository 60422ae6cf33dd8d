package handler

import (
	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/service"
)

type Handler struct {
	log                *zap.SugaredLogger
	teamService        service.TeamService
	userService        service.UserService
	pullRequestService service.PullRequestService
	statsService       service.StatsService
}

func NewHandler(
	log *zap.SugaredLogger,
	teamService service.TeamService,
	userService service.UserService,
	pullRequestService service.PullRequestService,
	statsService service.StatsService,
) *Handler {
	return &Handler{
		log:                log,
		teamService:        teamService,
		userService:        userService,
		pullRequestService: pullRequestService,
		statsService:       statsService,
	}
}
