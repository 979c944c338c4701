// Package repository содержит шлюз к PostgreSQL: единственный компонент,
// который выполняет SQL-запросы.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// ErrStorage оборачивает любую ошибку хранилища: соединение, ограничения, синтаксис
var ErrStorage = errors.New("storage error")

// Params именованные параметры запроса, в тексте запроса они записываются как @name
type Params map[string]any

// Gateway определяет интерфейс шлюза к хранилищу
type Gateway interface {
	// ExecReturningID выполняет INSERT/UPDATE/DELETE ... RETURNING id.
	// found равен false, если запрос не затронул ни одной строки
	ExecReturningID(ctx context.Context, query string, params Params) (id int64, found bool, err error)
	// FetchOne выполняет SELECT и сканирует первую строку в dest.
	// found равен false, если строк нет
	FetchOne(ctx context.Context, query string, params Params, dest ...any) (found bool, err error)
	// Ping проверяет соединение с базой данных
	Ping(ctx context.Context) error
}

// Database определяет интерфейс для работы с базой данных
type Database interface {
	// PingContext проверяет соединение с базой данных
	PingContext(ctx context.Context) error
	// QueryRowContext выполняет SQL-запрос и возвращает одну строку результата
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	// Close закрывает соединение с базой данных
	Close() error
}
