package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jbweber/homelab/campus/internal/auth"
	"github.com/jbweber/homelab/campus/internal/domain"
	"github.com/jbweber/homelab/campus/internal/resource"
)

// maxBodyBytes caps a PUT replacement body
const maxBodyBytes = 1 << 20

// endpoints adapts a resource.Handler to HTTP
type endpoints[T domain.Entity[T]] struct {
	api     *API
	handler *resource.Handler[T]
	decode  func(*queryParams) T
}

// routes returns the five operations served under base, e.g. /api/articles
func (e *endpoints[T]) routes(base string) []Route {
	return []Route{
		{Method: http.MethodGet, Path: base + "/all", Role: auth.RoleUser, Handler: e.list},
		{Method: http.MethodGet, Path: base, Role: auth.RoleUser, Handler: e.get},
		{Method: http.MethodPost, Path: base + "/post", Role: auth.RoleAdmin, Handler: e.create},
		{Method: http.MethodPut, Path: base, Role: auth.RoleAdmin, Handler: e.update},
		{Method: http.MethodDelete, Path: base, Role: auth.RoleAdmin, Handler: e.delete},
	}
}

func (e *endpoints[T]) list(w http.ResponseWriter, r *http.Request) {
	all, err := e.handler.List(r.Context())
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}
	e.api.writeJSON(w, r, http.StatusOK, all)
}

func (e *endpoints[T]) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query())
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}

	entity, err := e.handler.Get(r.Context(), id)
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}
	e.api.writeJSON(w, r, http.StatusOK, entity)
}

func (e *endpoints[T]) create(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	entity := e.decode(q)
	if err := q.Err(); err != nil {
		e.api.writeError(w, r, err)
		return
	}
	if len(q.times) > 0 {
		e.api.logger.LogAttrs(r.Context(), slog.LevelInfo, "parsed date-time parameters",
			append([]slog.Attr{slog.String("kind", e.handler.Kind())}, q.times...)...)
	}

	saved, err := e.handler.Create(r.Context(), entity)
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}
	e.api.writeJSON(w, r, http.StatusOK, saved)
}

func (e *endpoints[T]) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query())
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}

	var incoming T
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&incoming); err != nil {
		e.api.writeError(w, r, &MalformedInputError{Message: fmt.Sprintf("Request body is not valid JSON: %v", err)})
		return
	}

	updated, err := e.handler.Update(r.Context(), id, incoming)
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}
	e.api.writeJSON(w, r, http.StatusOK, updated)
}

func (e *endpoints[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Query())
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}

	msg, err := e.handler.Delete(r.Context(), id)
	if err != nil {
		e.api.writeError(w, r, err)
		return
	}
	e.api.writeJSON(w, r, http.StatusOK, MessageResponse{Message: msg})
}
