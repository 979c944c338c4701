package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// ErrEmptyDSN возвращается, если строка подключения не задана
var ErrEmptyDSN = errors.New("empty database DSN")

// DB представляет пул подключений к базе данных
type DB struct {
	conn *sql.DB
	pool *pgxpool.Pool
}

// NewDB создаёт пул подключений и проверяет соединение
func NewDB(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	conn := stdlib.OpenDBFromPool(pool)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		pool.Close()
		return nil, err
	}

	return &DB{conn: conn, pool: pool}, nil
}

// PingContext проверяет соединение с базой данных
func (db *DB) PingContext(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// QueryRowContext выполняет SQL-запрос и возвращает одну строку
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// Close закрывает соединения и пул
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.pool.Close()
	return err
}
