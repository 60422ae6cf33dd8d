package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor объединяет *sql.DB и *sql.Tx, чтобы вспомогательные запросы
// могли выполняться как вне, так и внутри транзакции
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
