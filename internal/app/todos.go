package app

import (
	"net/http"

	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/validation"
)

// HandleCreateTodo обрабатывает POST-запросы на "/todos/"
func (a *App) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var in models.Todo
	if err := validation.DecodeJSON(r.Body, &in); err != nil {
		a.writeError(w, todoResource, "create", err)
		return
	}
	out, err := a.todos.Create(r.Context(), in)
	if err != nil {
		a.writeError(w, todoResource, "create", err)
		return
	}
	a.writeJSONResponse(w, http.StatusCreated, out)
}

// HandleGetTodo обрабатывает GET-запросы на "/todos/{id}"
func (a *App) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, todoResource, "get", err)
		return
	}
	out, err := a.todos.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, todoResource, "get", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, out)
}

// HandleUpdateTodo обрабатывает PUT-запросы на "/todos/{id}"
func (a *App) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, todoResource, "update", err)
		return
	}
	var in models.Todo
	if err := validation.DecodeJSON(r.Body, &in); err != nil {
		a.writeError(w, todoResource, "update", err)
		return
	}
	out, err := a.todos.Update(r.Context(), id, in)
	if err != nil {
		a.writeError(w, todoResource, "update", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, out)
}

// HandleDeleteTodo обрабатывает DELETE-запросы на "/todos/{id}"
func (a *App) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, todoResource, "delete", err)
		return
	}
	if err := a.todos.Delete(r.Context(), id); err != nil {
		a.writeError(w, todoResource, "delete", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, models.MessageResponse{Message: todoResource.deleted})
}
