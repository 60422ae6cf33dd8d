package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/retry"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/vgrigoryan/pr-review-assigner/internal/config"
)

const (
	pingAttempts     = 5
	pingInitialDelay = 500 * time.Millisecond
	pingMaxDelay     = 5 * time.Second
)

// NewPostgres открывает соединение и дожидается готовности БД с ограниченным
// числом попыток. Бэкофф есть только на старте процесса: рабочие операции
// движка зависимость не ретраят
func NewPostgres(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(pingAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(pingInitialDelay),
		retry.MaxDelay(pingMaxDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
