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

// ListAnswersByQuestion returns a question's answers, newest first.
func (s *Store) ListAnswersByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, question_id, answer_text, created_at
		FROM answers
		WHERE question_id = ?
		ORDER BY created_at DESC, id DESC`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		var createdAt int64
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.AnswerText, &createdAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		a.CreatedAt = fromMillis(createdAt)
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return answers, nil
}

// GetAnswer returns one answer by id, or ErrNotFound.
func (s *Store) GetAnswer(ctx context.Context, id int64) (models.Answer, error) {
	var a models.Answer
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
		SELECT id, question_id, answer_text, created_at
		FROM answers
		WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.QuestionID, &a.AnswerText, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Answer{}, fmt.Errorf("answer %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("get answer %d: %w", id, err)
	}
	a.CreatedAt = fromMillis(createdAt)

	return a, nil
}

// CreateAnswer attaches an answer to an existing question. The question
// must exist at creation time; a missing question is ErrNotFound.
func (s *Store) CreateAnswer(ctx context.Context, questionID int64, text string) (models.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Answer{}, fmt.Errorf("answer text is required: %w", ErrValidation)
	}

	exists, err := s.questionExists(ctx, questionID)
	if err != nil {
		return models.Answer{}, err
	}
	if !exists {
		return models.Answer{}, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}

	now := time.Now()
	res, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO answers (question_id, answer_text, created_at)
		VALUES (?, ?, ?)`,
		questionID, text, toMillis(now),
	)
	if isForeignKeyViolation(err) {
		// Question deleted between the existence check and the insert.
		return models.Answer{}, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("insert answer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Answer{}, fmt.Errorf("insert answer id: %w", err)
	}

	return models.Answer{
		ID:         id,
		QuestionID: questionID,
		AnswerText: text,
		CreatedAt:  fromMillis(toMillis(now)),
	}, nil
}

// UpdateAnswer replaces the answer text. Returns false if no row matched.
func (s *Store) UpdateAnswer(ctx context.Context, id int64, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("answer text is required: %w", ErrValidation)
	}

	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE answers SET answer_text = ? WHERE id = ?`, text, id)
	if err != nil {
		return false, fmt.Errorf("update answer %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update answer %d: %w", id, err)
	}

	return n > 0, nil
}

// DeleteAnswer removes an answer. Returns false if no row matched.
func (s *Store) DeleteAnswer(ctx context.Context, id int64) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM answers WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete answer %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete answer %d: %w", id, err)
	}

	return n > 0, nil
}

func (s *Store) questionExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM questions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check question %d: %w", id, err)
	}

	return true, nil
}
