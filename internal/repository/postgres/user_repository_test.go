package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("пользователь найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		mock.ExpectQuery("SELECT id, username, team_name, is_active").
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "username", "team_name", "is_active", "created_at", "updated_at"},
			).AddRow("u1", "Alice", "backend", true, now, nil))

		user, err := repo.GetByID(context.Background(), "u1")

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Username)
		assert.Equal(t, "backend", user.TeamName)
		assert.True(t, user.IsActive)
		assert.Nil(t, user.UpdatedAt)
	})

	t.Run("пользователь не найден - NOT_FOUND", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT id, username, team_name, is_active").
			WithArgs("u999").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), "u999")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_GetActiveTeamMembers(t *testing.T) {
	repo, mock := setupUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, team_name, is_active").
		WithArgs("backend", "u1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "team_name", "is_active", "created_at", "updated_at"},
		).
			AddRow("u2", "Bob", "backend", true, now, nil).
			AddRow("u3", "Charlie", "backend", true, now, nil))

	users, err := repo.GetActiveTeamMembers(context.Background(), "backend", "u1")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u2", users[0].ID)
	assert.Equal(t, "u3", users[1].ID)
}

func TestUserRepository_SetIsActive(t *testing.T) {
	t.Run("флаг обновляется", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users SET is_active").
			WithArgs("u1", false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetIsActive(context.Background(), "u1", false)

		require.NoError(t, err)
	})

	t.Run("пользователь не найден - NOT_FOUND", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectExec("UPDATE users SET is_active").
			WithArgs("u999", true).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetIsActive(context.Background(), "u999", true)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
