package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
	"github.com/vgrigoryan/pr-review-assigner/internal/repository"
)

type teamService struct {
	log      *zap.SugaredLogger
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(log *zap.SugaredLogger, teamRepo repository.TeamRepository) TeamService {
	return &teamService{
		log:      log,
		teamRepo: teamRepo,
	}
}

// CreateTeam создает команду с участниками
func (s *teamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	exists, err := s.teamRepo.Exists(ctx, team.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTeamExists
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	createdTeam, err := s.teamRepo.GetByName(ctx, team.Name)
	if err != nil {
		return nil, err
	}

	s.log.Infow("team created", "team_name", team.Name, "members", len(team.Members))

	return createdTeam, nil
}

// GetTeam получает команду с участниками по имени
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	return s.teamRepo.GetByName(ctx, name)
}
