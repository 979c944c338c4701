package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T) (*PostgresGateway, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresGateway(db, zap.NewNop()), mock
}

func TestPostgresGateway_ExecReturningID(t *testing.T) {
	const insert = "INSERT INTO users (username, email) VALUES (@username, @email) RETURNING id"
	const update = "UPDATE users SET username = @username, email = @email WHERE id = @user_id RETURNING id"

	tests := []struct {
		name        string
		query       string
		params      Params
		setup       func(mock sqlmock.Sqlmock)
		expectedID  int64
		expectFound bool
		expectErr   bool
	}{
		{
			name:   "insert returns id",
			query:  insert,
			params: Params{"username": "alice", "email": "a@example.com"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, email) VALUES ($1, $2) RETURNING id")).
					WithArgs("alice", "a@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectedID:  1,
			expectFound: true,
		},
		{
			name:   "update binds parameters in order of appearance",
			query:  update,
			params: Params{"user_id": int64(7), "username": "bob", "email": "b@example.com"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET username = $1, email = $2 WHERE id = $3 RETURNING id")).
					WithArgs("bob", "b@example.com", int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
			},
			expectedID:  7,
			expectFound: true,
		},
		{
			name:   "no matching row",
			query:  update,
			params: Params{"user_id": int64(42), "username": "bob", "email": "b@example.com"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE users").
					WithArgs("bob", "b@example.com", int64(42)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectFound: false,
		},
		{
			name:   "storage error",
			query:  insert,
			params: Params{"username": "alice", "email": "a@example.com"},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs("alice", "a@example.com").
					WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, mock := newTestGateway(t)
			tt.setup(mock)

			id, found, err := gw.ExecReturningID(context.Background(), tt.query, tt.params)

			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrStorage)
				assert.Contains(t, err.Error(), "duplicate key")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectFound, found)
			assert.Equal(t, tt.expectedID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresGateway_FetchOne(t *testing.T) {
	const query = "SELECT id, title, description, is_complited FROM todos WHERE id = @todo_id"

	t.Run("row found", func(t *testing.T) {
		gw, mock := newTestGateway(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, is_complited FROM todos WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "is_complited"}).
				AddRow(3, "buy milk", "2 liters", true))

		var (
			id          int64
			title, desc string
			done        bool
		)
		found, err := gw.FetchOne(context.Background(), query, Params{"todo_id": int64(3)}, &id, &title, &desc, &done)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(3), id)
		assert.Equal(t, "buy milk", title)
		assert.Equal(t, "2 liters", desc)
		assert.True(t, done)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		gw, mock := newTestGateway(t)
		mock.ExpectQuery("SELECT id, title").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		var id int64
		found, err := gw.FetchOne(context.Background(), query, Params{"todo_id": int64(99)}, &id)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection lost", func(t *testing.T) {
		gw, mock := newTestGateway(t)
		mock.ExpectQuery("SELECT id, title").
			WithArgs(int64(1)).
			WillReturnError(sql.ErrConnDone)

		var id int64
		found, err := gw.FetchOne(context.Background(), query, Params{"todo_id": int64(1)}, &id)

		assert.False(t, found)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresGateway_Ping(t *testing.T) {
	tests := []struct {
		name      string
		pingErr   error
		expectErr bool
	}{
		{name: "database available"},
		{name: "database unavailable", pingErr: errors.New("connection refused"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := NewMockDatabase(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)
			db.EXPECT().QueryRowContext(gomock.Any(), gomock.Any()).Times(0)

			err := NewPostgresGateway(db, zap.NewNop()).Ping(context.Background())
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrStorage)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBind(t *testing.T) {
	text, args, err := bind(context.Background(),
		"DELETE FROM todos WHERE id = @todo_id RETURNING id",
		Params{"todo_id": int64(5)})

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM todos WHERE id = $1 RETURNING id", text)
	assert.Equal(t, []any{int64(5)}, args)
}

func TestNewDB_EmptyDSN(t *testing.T) {
	db, err := NewDB(context.Background(), "")
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrEmptyDSN)
}
