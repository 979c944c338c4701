package app

import (
	"net/http"

	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/validation"
)

// HandleCreateUser обрабатывает POST-запросы на "/users/"
func (a *App) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in models.UserCreate
	if err := validation.DecodeJSON(r.Body, &in); err != nil {
		a.writeError(w, userResource, "create", err)
		return
	}
	out, err := a.users.Create(r.Context(), in)
	if err != nil {
		a.writeError(w, userResource, "create", err)
		return
	}
	a.writeJSONResponse(w, http.StatusCreated, out)
}

// HandleGetUser обрабатывает GET-запросы на "/users/{id}"
func (a *App) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, userResource, "get", err)
		return
	}
	out, err := a.users.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, userResource, "get", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, out)
}

// HandleUpdateUser обрабатывает PUT-запросы на "/users/{id}"
func (a *App) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, userResource, "update", err)
		return
	}
	var in models.UserCreate
	if err := validation.DecodeJSON(r.Body, &in); err != nil {
		a.writeError(w, userResource, "update", err)
		return
	}
	out, err := a.users.Update(r.Context(), id, in)
	if err != nil {
		a.writeError(w, userResource, "update", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, out)
}

// HandleDeleteUser обрабатывает DELETE-запросы на "/users/{id}"
func (a *App) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		a.writeError(w, userResource, "delete", err)
		return
	}
	if err := a.users.Delete(r.Context(), id); err != nil {
		a.writeError(w, userResource, "delete", err)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, models.MessageResponse{Message: userResource.deleted})
}
