// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/interview-prep/middleware"
	"github.com/danielhkuo/interview-prep/models"
	"github.com/danielhkuo/interview-prep/store"
)

// TagHandler serves the uniform CRUD surface shared by categories,
// companies, and roles. One instance is created per kind.
type TagHandler struct {
	st   *store.Store
	kind store.TagKind
}

func NewTagHandler(st *store.Store, kind store.TagKind) *TagHandler {
	return &TagHandler{st: st, kind: kind}
}

// tagRequest covers both body shapes: categories and companies send
// "name", roles send "title".
type tagRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (h *TagHandler) value(req tagRequest) string {
	if h.kind == store.TagRole {
		return req.Title
	}
	return req.Name
}

func (h *TagHandler) toResponse(t store.Tag) any {
	switch h.kind {
	case store.TagRole:
		return models.Role{ID: t.ID, Title: t.Name, CreatedAt: t.CreatedAt}
	case store.TagCompany:
		return models.Company{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
	default:
		return models.Category{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
	}
}

func (h *TagHandler) label() string {
	switch h.kind {
	case store.TagRole:
		return "Role"
	case store.TagCompany:
		return "Company"
	default:
		return "Category"
	}
}

// List handles GET /{tags}
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.st.ListTags(r.Context(), h.kind)
	if err != nil {
		slog.Error("failed to list tags", "kind", h.kind.String(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]any, 0, len(tags))
	for _, t := range tags {
		out = append(out, h.toResponse(t))
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// Get handles GET /{tags}/{id}
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	tag, err := h.st.GetTag(r.Context(), h.kind, id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, h.label()+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to get tag", "kind", h.kind.String(), "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.toResponse(tag))
}

// Create handles POST /{tags}
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.value(req) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, h.kind.Field()+" is required")
		return
	}

	tag, err := h.st.CreateTag(r.Context(), h.kind, h.value(req))
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, h.kind.Field()+" is required")
		return
	}
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, h.label()+" already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create tag", "kind", h.kind.String(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("tag created", "kind", h.kind.String(), "id", tag.ID, "name", tag.Name)

	middleware.JSONResponse(w, http.StatusCreated, h.toResponse(tag))
}

// Update handles PUT /{tags}/{id}
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req tagRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.value(req) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, h.kind.Field()+" is required")
		return
	}

	updated, err := h.st.UpdateTag(r.Context(), h.kind, id, h.value(req))
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, h.kind.Field()+" is required")
		return
	}
	if errors.Is(err, store.ErrConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, h.label()+" already exists")
		return
	}
	if err != nil {
		slog.Error("failed to update tag", "kind", h.kind.String(), "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !updated {
		middleware.ErrorResponse(w, http.StatusNotFound, h.label()+" not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /{tags}/{id}. Questions and sessions that
// referenced the deleted row survive with the tag nulled out.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.st.DeleteTag(r.Context(), h.kind, id)
	if err != nil {
		slog.Error("failed to delete tag", "kind", h.kind.String(), "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, h.label()+" not found")
		return
	}

	slog.Info("tag deleted", "kind", h.kind.String(), "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
