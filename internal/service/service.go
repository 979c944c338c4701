// Package service содержит обработчики ресурсов: проверка входной модели,
// построение запроса, вызов шлюза и сборка выходной модели.
package service

import (
	"errors"
	"fmt"

	"github.com/tempizhere/crudapi/internal/repository"
)

// ErrNotFound возвращается, если строка с указанным ID не найдена
var ErrNotFound = errors.New("not found")

// errNoID возвращается, если INSERT ... RETURNING id не вернул строку
var errNoID = fmt.Errorf("%w: insert returned no id", repository.ErrStorage)
