package a

import (
	"context"
	"fmt"
)

type gateway struct{}

func (gateway) ExecReturningID(ctx context.Context, query string, params map[string]any) (int64, bool, error) {
	return 0, false, nil
}

func (gateway) FetchOne(ctx context.Context, query string, params map[string]any, dest ...any) (bool, error) {
	return false, nil
}

const selectQuery = `SELECT id FROM users WHERE id = @user_id`

func queries(ctx context.Context, gw gateway, table string, id int64) {
	gw.FetchOne(ctx, selectQuery, map[string]any{"user_id": id})
	gw.FetchOne(ctx, "SELECT id FROM "+"users", nil)
	gw.FetchOne(ctx, "SELECT id FROM "+table, nil)                         // want "текст запроса для FetchOne собран динамически"
	gw.ExecReturningID(ctx, fmt.Sprintf("DELETE FROM users WHERE id = %d", id), nil) // want "текст запроса для ExecReturningID собран динамически"
	gw.ExecReturningID(ctx, ("DELETE FROM " + table), nil)                  // want "текст запроса для ExecReturningID собран динамически"
}
