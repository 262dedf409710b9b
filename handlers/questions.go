// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/interview-prep/middleware"
	"github.com/danielhkuo/interview-prep/models"
	"github.com/danielhkuo/interview-prep/store"
)

type QuestionHandler struct {
	st *store.Store
}

func NewQuestionHandler(st *store.Store) *QuestionHandler {
	return &QuestionHandler{st: st}
}

// List handles GET /questions with optional query params category_id,
// company_id, role_id, and search. Filters compose with AND.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filters store.QuestionFilters
	query := r.URL.Query()

	for _, param := range []string{"category_id", "company_id", "role_id"} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid "+param)
			return
		}
		switch param {
		case "category_id":
			filters.CategoryID = &id
		case "company_id":
			filters.CompanyID = &id
		case "role_id":
			filters.RoleID = &id
		}
	}
	filters.Search = query.Get("search")

	questions, err := h.st.ListQuestions(r.Context(), filters)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// ListForSession handles GET /questions/session/{sessionId}, returning
// the fully joined questions belonging to a session.
func (h *QuestionHandler) ListForSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid session id")
		return
	}

	questions, err := h.st.ListSessionQuestions(r.Context(), sessionID)
	if err != nil {
		slog.Error("failed to list session questions", "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// Get handles GET /questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	question, err := h.st.GetQuestion(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to get question", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, question)
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	question, err := h.st.CreateQuestion(r.Context(), req.QuestionText, req.CategoryID, req.CompanyID, req.RoleID)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Referenced tag not found")
		return
	}
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("question created", "id", question.ID)

	middleware.JSONResponse(w, http.StatusCreated, question)
}

// Update handles PUT /questions/{id}. All mutable fields are replaced:
// omitting a tag id untags the question.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	updated, err := h.st.UpdateQuestion(r.Context(), id, req.QuestionText, req.CategoryID, req.CompanyID, req.RoleID)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Referenced tag not found")
		return
	}
	if err != nil {
		slog.Error("failed to update question", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !updated {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /questions/{id}. The question's answers and
// session memberships cascade away with it.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.st.DeleteQuestion(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete question", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	slog.Info("question deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
