package service

import (
	"context"

	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/repository"
	"github.com/tempizhere/crudapi/internal/validation"
	"go.uber.org/zap"
)

const (
	insertUserQuery = `
		INSERT INTO users (username, email)
		VALUES (@username, @email)
		RETURNING id`
	selectUserQuery = `
		SELECT id, username, email
		FROM users
		WHERE id = @user_id`
	updateUserQuery = `
		UPDATE users
		SET username = @username, email = @email
		WHERE id = @user_id
		RETURNING id`
	deleteUserQuery = `
		DELETE FROM users
		WHERE id = @user_id
		RETURNING id`
)

// Users реализует операции над пользователями
type Users struct {
	gw     repository.Gateway
	logger *zap.Logger
}

// NewUsers создаёт новый экземпляр Users
func NewUsers(gw repository.Gateway, logger *zap.Logger) *Users {
	return &Users{gw: gw, logger: logger}
}

// Create проверяет данные и создаёт пользователя
func (s *Users) Create(ctx context.Context, in models.UserCreate) (models.UserReturn, error) {
	if err := validation.Validate(in); err != nil {
		return models.UserReturn{}, err
	}

	id, found, err := s.gw.ExecReturningID(ctx, insertUserQuery, userParams(in))
	if err != nil {
		return models.UserReturn{}, err
	}
	if !found {
		return models.UserReturn{}, errNoID
	}

	s.logger.Info("User created", zap.Int64("user_id", id))
	return models.NewUserReturn(id, in), nil
}

// Get возвращает пользователя по ID
func (s *Users) Get(ctx context.Context, id int64) (models.UserReturn, error) {
	var u models.UserReturn
	found, err := s.gw.FetchOne(ctx, selectUserQuery, repository.Params{"user_id": id}, &u.ID, &u.Username, &u.Email)
	if err != nil {
		return models.UserReturn{}, err
	}
	if !found {
		return models.UserReturn{}, ErrNotFound
	}
	return u, nil
}

// Update полностью заменяет поля пользователя
func (s *Users) Update(ctx context.Context, id int64, in models.UserCreate) (models.UserReturn, error) {
	if err := validation.Validate(in); err != nil {
		return models.UserReturn{}, err
	}

	params := userParams(in)
	params["user_id"] = id
	_, found, err := s.gw.ExecReturningID(ctx, updateUserQuery, params)
	if err != nil {
		return models.UserReturn{}, err
	}
	if !found {
		return models.UserReturn{}, ErrNotFound
	}

	s.logger.Info("User updated", zap.Int64("user_id", id))
	return models.NewUserReturn(id, in), nil
}

// Delete удаляет пользователя по ID
func (s *Users) Delete(ctx context.Context, id int64) error {
	_, found, err := s.gw.ExecReturningID(ctx, deleteUserQuery, repository.Params{"user_id": id})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func userParams(in models.UserCreate) repository.Params {
	return repository.Params{
		"username": in.Username,
		"email":    in.Email,
	}
}
