package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/repository"
	"go.uber.org/zap"
)

// memoryGateway хранит пользователей в map и понимает только запросы Users
type memoryGateway struct {
	rows   map[int64]models.UserFields
	nextID int64
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{rows: make(map[int64]models.UserFields)}
}

func (g *memoryGateway) ExecReturningID(_ context.Context, query string, p repository.Params) (int64, bool, error) {
	switch query {
	case insertUserQuery:
		g.nextID++
		g.rows[g.nextID] = models.UserFields{Username: p["username"].(string), Email: p["email"].(string)}
		return g.nextID, true, nil
	case updateUserQuery:
		id := p["user_id"].(int64)
		if _, ok := g.rows[id]; !ok {
			return 0, false, nil
		}
		g.rows[id] = models.UserFields{Username: p["username"].(string), Email: p["email"].(string)}
		return id, true, nil
	case deleteUserQuery:
		id := p["user_id"].(int64)
		if _, ok := g.rows[id]; !ok {
			return 0, false, nil
		}
		delete(g.rows, id)
		return id, true, nil
	}
	panic("unexpected query: " + query)
}

func (g *memoryGateway) FetchOne(_ context.Context, query string, p repository.Params, dest ...any) (bool, error) {
	if query != selectUserQuery {
		panic("unexpected query: " + query)
	}
	id := p["user_id"].(int64)
	row, ok := g.rows[id]
	if !ok {
		return false, nil
	}
	*dest[0].(*int64) = id
	*dest[1].(*string) = row.Username
	*dest[2].(*string) = row.Email
	return true, nil
}

func (g *memoryGateway) Ping(context.Context) error {
	return nil
}

func TestUsers_Lifecycle(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newMemoryGateway(), zap.NewNop())

	inputs := []models.UserCreate{
		alice(),
		{UserFields: models.UserFields{Username: "bob", Email: "b@example.com"}},
		{UserFields: models.UserFields{Username: "Мария", Email: "m@example.ru"}},
	}

	for _, in := range inputs {
		created, err := users.Create(ctx, in)
		require.NoError(t, err)

		// create + get возвращают входные поля и выданный ID
		got, err := users.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, models.NewUserReturn(created.ID, in), got)

		// update + get возвращают новые поля целиком
		replacement := models.UserCreate{UserFields: models.UserFields{Username: in.Username + "-2", Email: "new@example.com"}}
		updated, err := users.Update(ctx, created.ID, replacement)
		require.NoError(t, err)
		got, err = users.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		// delete + get дают NotFound
		require.NoError(t, users.Delete(ctx, created.ID))
		_, err = users.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestUsers_MissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	users := NewUsers(newMemoryGateway(), zap.NewNop())

	_, err := users.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, repository.ErrStorage)

	_, err = users.Update(ctx, 404, alice())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, repository.ErrStorage)

	err = users.Delete(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, repository.ErrStorage)
}
