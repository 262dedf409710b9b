// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/interview-prep/handlers"
	"github.com/danielhkuo/interview-prep/middleware"
	"github.com/danielhkuo/interview-prep/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	categoryHandler := handlers.NewTagHandler(st, store.TagCategory)
	companyHandler := handlers.NewTagHandler(st, store.TagCompany)
	roleHandler := handlers.NewTagHandler(st, store.TagRole)
	questionHandler := handlers.NewQuestionHandler(st)
	answerHandler := handlers.NewAnswerHandler(st)
	sessionHandler := handlers.NewSessionHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Categories
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoryHandler.List))
	mux.HandleFunc("POST /categories", middleware.WithLogging(categoryHandler.Create))
	mux.HandleFunc("GET /categories/{id}", middleware.WithLogging(categoryHandler.Get))
	mux.HandleFunc("PUT /categories/{id}", middleware.WithLogging(categoryHandler.Update))
	mux.HandleFunc("DELETE /categories/{id}", middleware.WithLogging(categoryHandler.Delete))

	// Companies
	mux.HandleFunc("GET /companies", middleware.WithLogging(companyHandler.List))
	mux.HandleFunc("POST /companies", middleware.WithLogging(companyHandler.Create))
	mux.HandleFunc("GET /companies/{id}", middleware.WithLogging(companyHandler.Get))
	mux.HandleFunc("PUT /companies/{id}", middleware.WithLogging(companyHandler.Update))
	mux.HandleFunc("DELETE /companies/{id}", middleware.WithLogging(companyHandler.Delete))

	// Roles
	mux.HandleFunc("GET /roles", middleware.WithLogging(roleHandler.List))
	mux.HandleFunc("POST /roles", middleware.WithLogging(roleHandler.Create))
	mux.HandleFunc("GET /roles/{id}", middleware.WithLogging(roleHandler.Get))
	mux.HandleFunc("PUT /roles/{id}", middleware.WithLogging(roleHandler.Update))
	mux.HandleFunc("DELETE /roles/{id}", middleware.WithLogging(roleHandler.Delete))

	// Questions (list supports category_id, company_id, role_id, search)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("GET /questions/session/{sessionId}", middleware.WithLogging(questionHandler.ListForSession))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Get))
	mux.HandleFunc("PUT /questions/{id}", middleware.WithLogging(questionHandler.Update))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.Delete))

	// Answers (scoped to their question)
	mux.HandleFunc("GET /answers/question/{questionId}", middleware.WithLogging(answerHandler.ListByQuestion))
	mux.HandleFunc("POST /answers/question/{questionId}", middleware.WithLogging(answerHandler.Create))
	mux.HandleFunc("PUT /answers/{id}", middleware.WithLogging(answerHandler.Update))
	mux.HandleFunc("DELETE /answers/{id}", middleware.WithLogging(answerHandler.Delete))

	// Practice sessions and membership
	mux.HandleFunc("GET /sessions", middleware.WithLogging(sessionHandler.List))
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("PUT /sessions/{id}", middleware.WithLogging(sessionHandler.Update))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.Delete))
	mux.HandleFunc("GET /sessions/{sessionId}/questions", middleware.WithLogging(sessionHandler.ListQuestionIDs))
	mux.HandleFunc("POST /sessions/{sessionId}/questions/{questionId}", middleware.WithLogging(sessionHandler.AddQuestion))
	mux.HandleFunc("DELETE /sessions/{sessionId}/questions/{questionId}", middleware.WithLogging(sessionHandler.RemoveQuestion))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("interview-prep API v1"))
	})

	return mux
}
