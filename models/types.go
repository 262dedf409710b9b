// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

type UpdateCompanyRequest struct {
	Name string `json:"name"`
}

type CreateRoleRequest struct {
	Title string `json:"title"`
}

type UpdateRoleRequest struct {
	Title string `json:"title"`
}

type CreateQuestionRequest struct {
	QuestionText string `json:"question_text"`
	CategoryID   *int64 `json:"category_id"`
	CompanyID    *int64 `json:"company_id"`
	RoleID       *int64 `json:"role_id"`
}

// Updates are a full replace of mutable fields: an omitted tag id
// clears the corresponding foreign key.
type UpdateQuestionRequest struct {
	QuestionText string `json:"question_text"`
	CategoryID   *int64 `json:"category_id"`
	CompanyID    *int64 `json:"company_id"`
	RoleID       *int64 `json:"role_id"`
}

type CreateAnswerRequest struct {
	AnswerText string `json:"answer_text"`
}

type UpdateAnswerRequest struct {
	AnswerText string `json:"answer_text"`
}

type CreateSessionRequest struct {
	Name      string `json:"name"`
	CompanyID *int64 `json:"company_id"`
	RoleID    *int64 `json:"role_id"`
}

type UpdateSessionRequest struct {
	Name      string `json:"name"`
	CompanyID *int64 `json:"company_id"`
	RoleID    *int64 `json:"role_id"`
}

// Domain types

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Role struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Question carries its joined tag names alongside the raw foreign keys.
// A null foreign key yields a null joined name.
type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	CategoryID   *int64    `json:"category_id"`
	CompanyID    *int64    `json:"company_id"`
	RoleID       *int64    `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryName *string   `json:"category_name"`
	CompanyName  *string   `json:"company_name"`
	RoleTitle    *string   `json:"role_title"`
}

type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	AnswerText string    `json:"answer_text"`
	CreatedAt  time.Time `json:"created_at"`
}

type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CompanyID   *int64    `json:"company_id"`
	RoleID      *int64    `json:"role_id"`
	CreatedAt   time.Time `json:"created_at"`
	CompanyName *string   `json:"company_name"`
	RoleTitle   *string   `json:"role_title"`
}

// SessionQuestionRef is one row of a session's raw membership list.
type SessionQuestionRef struct {
	QuestionID int64 `json:"question_id"`
}

// Response envelopes

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
