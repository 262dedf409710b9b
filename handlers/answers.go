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

type AnswerHandler struct {
	st *store.Store
}

func NewAnswerHandler(st *store.Store) *AnswerHandler {
	return &AnswerHandler{st: st}
}

// ListByQuestion handles GET /answers/question/{questionId}
func (h *AnswerHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "questionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	answers, err := h.st.ListAnswersByQuestion(r.Context(), questionID)
	if err != nil {
		slog.Error("failed to list answers", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// Create handles POST /answers/question/{questionId}. The question
// must exist.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "questionId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req models.CreateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AnswerText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_text is required")
		return
	}

	answer, err := h.st.CreateAnswer(r.Context(), questionID, req.AnswerText)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_text is required")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to create answer", "question_id", questionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("answer created", "id", answer.ID, "question_id", questionID)

	middleware.JSONResponse(w, http.StatusCreated, answer)
}

// Update handles PUT /answers/{id}
func (h *AnswerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.UpdateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AnswerText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_text is required")
		return
	}

	updated, err := h.st.UpdateAnswer(r.Context(), id, req.AnswerText)
	if errors.Is(err, store.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_text is required")
		return
	}
	if err != nil {
		slog.Error("failed to update answer", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !updated {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /answers/{id}
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.st.DeleteAnswer(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete answer", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
