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

type SessionHandler struct {
	st *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{st: st}
}

// List handles GET /sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.st.ListSessions(r.Context())
	if err != nil {
		slog.Error("failed to list sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sessions)
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	session, err := h.st.GetSession(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to get session", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, session)
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	session, err := h.st.CreateSession(r.Context(), req.Name, req.CompanyID, req.RoleID)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Referenced tag not found")
		return
	}
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("session created", "id", session.ID, "name", session.Name)

	middleware.JSONResponse(w, http.StatusCreated, session)
}

// Update handles PUT /sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.UpdateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	updated, err := h.st.UpdateSession(r.Context(), id, req.Name, req.CompanyID, req.RoleID)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Referenced tag not found")
		return
	}
	if err != nil {
		slog.Error("failed to update session", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !updated {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /sessions/{id}. Memberships cascade away; the
// member questions survive.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.st.DeleteSession(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete session", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("session deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// AddQuestion handles POST /sessions/{sessionId}/questions/{questionId}.
// Adding an already-present pair succeeds without creating a duplicate.
func (h *SessionHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid session id")
		return
	}
	questionID, ok := pathID(r, "questionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	err := h.st.AddQuestion(r.Context(), sessionID, questionID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to add question to session",
			"session_id", sessionID, "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("question added to session", "session_id", sessionID, "question_id", questionID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// RemoveQuestion handles DELETE /sessions/{sessionId}/questions/{questionId}
func (h *SessionHandler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid session id")
		return
	}
	questionID, ok := pathID(r, "questionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	removed, err := h.st.RemoveQuestion(r.Context(), sessionID, questionID)
	if err != nil {
		slog.Error("failed to remove question from session",
			"session_id", sessionID, "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found in session")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ListQuestionIDs handles GET /sessions/{sessionId}/questions, the raw
// membership list. The joined rows live at /questions/session/{sessionId}.
func (h *SessionHandler) ListQuestionIDs(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid session id")
		return
	}

	ids, err := h.st.ListQuestionIDs(r.Context(), sessionID)
	if err != nil {
		slog.Error("failed to list session membership", "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	refs := make([]models.SessionQuestionRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.SessionQuestionRef{QuestionID: id})
	}

	middleware.JSONResponse(w, http.StatusOK, refs)
}
