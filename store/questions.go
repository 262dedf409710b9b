// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/interview-prep/models"
)

// QuestionFilters narrows ListQuestions. Nil/empty fields impose no
// constraint; set fields compose with AND.
type QuestionFilters struct {
	CategoryID *int64
	CompanyID  *int64
	RoleID     *int64
	Search     string // case-insensitive substring match on question text
}

const questionSelect = `
	SELECT q.id, q.question_text, q.category_id, q.company_id, q.role_id, q.created_at,
	       c.name, co.name, r.title
	FROM questions q
	LEFT JOIN categories c ON q.category_id = c.id
	LEFT JOIN companies co ON q.company_id = co.id
	LEFT JOIN roles r ON q.role_id = r.id`

func scanQuestion(scan func(dest ...any) error) (models.Question, error) {
	var q models.Question
	var createdAt int64
	var categoryID, companyID, roleID sql.NullInt64
	var categoryName, companyName, roleTitle sql.NullString

	err := scan(
		&q.ID, &q.QuestionText, &categoryID, &companyID, &roleID, &createdAt,
		&categoryName, &companyName, &roleTitle,
	)
	if err != nil {
		return models.Question{}, err
	}

	q.CreatedAt = fromMillis(createdAt)
	q.CategoryID = int64Ptr(categoryID)
	q.CompanyID = int64Ptr(companyID)
	q.RoleID = int64Ptr(roleID)
	q.CategoryName = stringPtr(categoryName)
	q.CompanyName = stringPtr(companyName)
	q.RoleTitle = stringPtr(roleTitle)

	return q, nil
}

// ListQuestions returns questions joined with their tag names, newest
// first, narrowed by the given filters.
func (s *Store) ListQuestions(ctx context.Context, filters QuestionFilters) ([]models.Question, error) {
	query := questionSelect + `
	WHERE 1=1`
	args := []any{}

	if filters.CategoryID != nil {
		query += ` AND q.category_id = ?`
		args = append(args, *filters.CategoryID)
	}
	if filters.CompanyID != nil {
		query += ` AND q.company_id = ?`
		args = append(args, *filters.CompanyID)
	}
	if filters.RoleID != nil {
		query += ` AND q.role_id = ?`
		args = append(args, *filters.RoleID)
	}
	if filters.Search != "" {
		query += ` AND q.question_text LIKE ?`
		args = append(args, "%"+filters.Search+"%")
	}

	query += `
	ORDER BY q.created_at DESC, q.id DESC`

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	return collectQuestions(rows)
}

// ListSessionQuestions returns the fully joined questions belonging to
// a session, most recently added first.
func (s *Store) ListSessionQuestions(ctx context.Context, sessionID int64) ([]models.Question, error) {
	query := questionSelect + `
	INNER JOIN practice_session_questions psq ON q.id = psq.question_id
	WHERE psq.session_id = ?
	ORDER BY psq.added_at DESC, q.id DESC`

	rows, err := s.sqlDB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session questions: %w", err)
	}
	defer rows.Close()

	return collectQuestions(rows)
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// GetQuestion returns one question with joined tag names, or ErrNotFound.
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	row := s.sqlDB.QueryRowContext(ctx, questionSelect+`
	WHERE q.id = ?`, id)

	q, err := scanQuestion(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}

	return q, nil
}

// CreateQuestion inserts a question. Text is required; tag ids are
// optional but must reference existing rows.
func (s *Store) CreateQuestion(ctx context.Context, text string, categoryID, companyID, roleID *int64) (models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Question{}, fmt.Errorf("question text is required: %w", ErrValidation)
	}

	res, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO questions (question_text, category_id, company_id, role_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		text, nullableID(categoryID), nullableID(companyID), nullableID(roleID),
		toMillis(time.Now()),
	)
	if isForeignKeyViolation(err) {
		return models.Question{}, fmt.Errorf("question tag reference: %w", ErrNotFound)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question id: %w", err)
	}

	return s.GetQuestion(ctx, id)
}

// UpdateQuestion replaces all mutable fields. Returns false if no row
// matched the id.
func (s *Store) UpdateQuestion(ctx context.Context, id int64, text string, categoryID, companyID, roleID *int64) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("question text is required: %w", ErrValidation)
	}

	res, err := s.sqlDB.ExecContext(ctx, `
		UPDATE questions
		SET question_text = ?, category_id = ?, company_id = ?, role_id = ?
		WHERE id = ?`,
		text, nullableID(categoryID), nullableID(companyID), nullableID(roleID), id,
	)
	if isForeignKeyViolation(err) {
		return false, fmt.Errorf("question tag reference: %w", ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("update question %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update question %d: %w", id, err)
	}

	return n > 0, nil
}

// DeleteQuestion removes a question. Returns false if no row matched.
// The schema cascades the delete to the question's answers and session
// memberships within the same statement.
func (s *Store) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}

	return n > 0, nil
}
