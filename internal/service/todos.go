package service

import (
	"context"

	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/repository"
	"github.com/tempizhere/crudapi/internal/validation"
	"go.uber.org/zap"
)

const (
	insertTodoQuery = `
		INSERT INTO todos (title, description, is_complited)
		VALUES (@title, @description, @is_complited)
		RETURNING id`
	selectTodoQuery = `
		SELECT id, title, description, is_complited
		FROM todos
		WHERE id = @todo_id`
	updateTodoQuery = `
		UPDATE todos
		SET title = @title, description = @description, is_complited = @is_complited
		WHERE id = @todo_id
		RETURNING id`
	deleteTodoQuery = `
		DELETE FROM todos
		WHERE id = @todo_id
		RETURNING id`
)

// Todos реализует операции над задачами
type Todos struct {
	gw     repository.Gateway
	logger *zap.Logger
}

// NewTodos создаёт новый экземпляр Todos
func NewTodos(gw repository.Gateway, logger *zap.Logger) *Todos {
	return &Todos{gw: gw, logger: logger}
}

// Create проверяет данные и создаёт задачу
func (s *Todos) Create(ctx context.Context, in models.Todo) (models.TodoReturn, error) {
	if err := validation.Validate(in); err != nil {
		return models.TodoReturn{}, err
	}

	id, found, err := s.gw.ExecReturningID(ctx, insertTodoQuery, todoParams(in))
	if err != nil {
		return models.TodoReturn{}, err
	}
	if !found {
		return models.TodoReturn{}, errNoID
	}

	s.logger.Info("Todo created", zap.Int64("todo_id", id))
	return models.NewTodoReturn(id, in), nil
}

// Get возвращает задачу по ID
func (s *Todos) Get(ctx context.Context, id int64) (models.TodoReturn, error) {
	var t models.TodoReturn
	found, err := s.gw.FetchOne(ctx, selectTodoQuery, repository.Params{"todo_id": id},
		&t.ID, &t.Title, &t.Description, &t.IsComplited)
	if err != nil {
		return models.TodoReturn{}, err
	}
	if !found {
		return models.TodoReturn{}, ErrNotFound
	}
	return t, nil
}

// Update полностью заменяет поля задачи
func (s *Todos) Update(ctx context.Context, id int64, in models.Todo) (models.TodoReturn, error) {
	if err := validation.Validate(in); err != nil {
		return models.TodoReturn{}, err
	}

	params := todoParams(in)
	params["todo_id"] = id
	_, found, err := s.gw.ExecReturningID(ctx, updateTodoQuery, params)
	if err != nil {
		return models.TodoReturn{}, err
	}
	if !found {
		return models.TodoReturn{}, ErrNotFound
	}

	s.logger.Info("Todo updated", zap.Int64("todo_id", id))
	return models.NewTodoReturn(id, in), nil
}

// Delete удаляет задачу по ID
func (s *Todos) Delete(ctx context.Context, id int64) error {
	_, found, err := s.gw.ExecReturningID(ctx, deleteTodoQuery, repository.Params{"todo_id": id})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	s.logger.Info("Todo deleted", zap.Int64("todo_id", id))
	return nil
}

func todoParams(in models.Todo) repository.Params {
	return repository.Params{
		"title":        in.Title,
		"description":  in.Description,
		"is_complited": in.IsComplited,
	}
}
