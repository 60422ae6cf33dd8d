//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/vgrigoryan/pr-review-assigner/internal/db"
	pgrepo "github.com/vgrigoryan/pr-review-assigner/internal/repository/postgres"
	"github.com/vgrigoryan/pr-review-assigner/internal/service"
)

// setupTestDB поднимает Postgres в контейнере и накатывает миграции
func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	require.NoError(t, db.Migrate(database), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// newServices собирает сервисный слой поверх тестовой БД
func newServices(t *testing.T, database *sql.DB) (service.TeamService, service.UserService, service.PullRequestService) {
	log := zap.NewNop().Sugar()

	teamRepo := pgrepo.NewTeamRepository(database)
	userRepo := pgrepo.NewUserRepository(database)
	prRepo := pgrepo.NewPullRequestRepository(database)

	teamService := service.NewTeamService(log, teamRepo)
	userService := service.NewUserService(log, userRepo, prRepo)
	prService := service.NewPullRequestService(log, prRepo, userRepo)

	return teamService, userService, prService
}
