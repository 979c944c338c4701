package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PostgresGateway реализует Gateway поверх database/sql с драйвером pgx
type PostgresGateway struct {
	db     Database
	logger *zap.Logger
}

// NewPostgresGateway создаёт новый экземпляр PostgresGateway
func NewPostgresGateway(db Database, logger *zap.Logger) *PostgresGateway {
	return &PostgresGateway{
		db:     db,
		logger: logger,
	}
}

// ExecReturningID выполняет запрос с RETURNING id и возвращает ID затронутой строки
func (g *PostgresGateway) ExecReturningID(ctx context.Context, query string, params Params) (int64, bool, error) {
	var id int64
	found, err := g.FetchOne(ctx, query, params, &id)
	if err != nil || !found {
		return 0, found, err
	}
	return id, true, nil
}

// FetchOne выполняет запрос и сканирует первую строку результата в dest
func (g *PostgresGateway) FetchOne(ctx context.Context, query string, params Params, dest ...any) (bool, error) {
	text, args, err := bind(ctx, query, params)
	if err != nil {
		g.logger.Error("Failed to bind query parameters", zap.String("query", query), zap.Error(err))
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	err = g.db.QueryRowContext(ctx, text, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		g.logger.Error("Failed to execute query", zap.String("query", text), zap.Error(err))
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return true, nil
}

// Ping проверяет соединение с базой данных
func (g *PostgresGateway) Ping(ctx context.Context) error {
	if err := g.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// bind заменяет @name на $n и упорядочивает значения по номерам
func bind(ctx context.Context, query string, params Params) (string, []any, error) {
	return pgx.NamedArgs(params).RewriteQuery(ctx, nil, query, nil)
}
