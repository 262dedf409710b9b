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

const sessionSelect = `
	SELECT ps.id, ps.name, ps.company_id, ps.role_id, ps.created_at,
	       c.name, r.title
	FROM practice_sessions ps
	LEFT JOIN companies c ON ps.company_id = c.id
	LEFT JOIN roles r ON ps.role_id = r.id`

func scanSession(scan func(dest ...any) error) (models.Session, error) {
	var sess models.Session
	var createdAt int64
	var companyID, roleID sql.NullInt64
	var companyName, roleTitle sql.NullString

	err := scan(&sess.ID, &sess.Name, &companyID, &roleID, &createdAt, &companyName, &roleTitle)
	if err != nil {
		return models.Session{}, err
	}

	sess.CreatedAt = fromMillis(createdAt)
	sess.CompanyID = int64Ptr(companyID)
	sess.RoleID = int64Ptr(roleID)
	sess.CompanyName = stringPtr(companyName)
	sess.RoleTitle = stringPtr(roleTitle)

	return sess, nil
}

// ListSessions returns all practice sessions joined with their company
// name and role title, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	rows, err := s.sqlDB.QueryContext(ctx, sessionSelect+`
	ORDER BY ps.created_at DESC, ps.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// GetSession returns one session with joined names, or ErrNotFound.
func (s *Store) GetSession(ctx context.Context, id int64) (models.Session, error) {
	row := s.sqlDB.QueryRowContext(ctx, sessionSelect+`
	WHERE ps.id = ?`, id)

	sess, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("get session %d: %w", id, err)
	}

	return sess, nil
}

// CreateSession inserts a session. Name is required; company and role
// ids are optional but must reference existing rows.
func (s *Store) CreateSession(ctx context.Context, name string, companyID, roleID *int64) (models.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Session{}, fmt.Errorf("session name is required: %w", ErrValidation)
	}

	res, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO practice_sessions (name, company_id, role_id, created_at)
		VALUES (?, ?, ?, ?)`,
		name, nullableID(companyID), nullableID(roleID), toMillis(time.Now()),
	)
	if isForeignKeyViolation(err) {
		return models.Session{}, fmt.Errorf("session tag reference: %w", ErrNotFound)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Session{}, fmt.Errorf("insert session id: %w", err)
	}

	return s.GetSession(ctx, id)
}

// UpdateSession replaces all mutable fields. Returns false if no row
// matched the id.
func (s *Store) UpdateSession(ctx context.Context, id int64, name string, companyID, roleID *int64) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("session name is required: %w", ErrValidation)
	}

	res, err := s.sqlDB.ExecContext(ctx, `
		UPDATE practice_sessions
		SET name = ?, company_id = ?, role_id = ?
		WHERE id = ?`,
		name, nullableID(companyID), nullableID(roleID), id,
	)
	if isForeignKeyViolation(err) {
		return false, fmt.Errorf("session tag reference: %w", ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("update session %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update session %d: %w", id, err)
	}

	return n > 0, nil
}

// DeleteSession removes a session. Returns false if no row matched.
// Memberships cascade; the questions themselves survive.
func (s *Store) DeleteSession(ctx context.Context, id int64) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM practice_sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete session %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete session %d: %w", id, err)
	}

	return n > 0, nil
}

// AddQuestion adds a question to a session's membership set. Re-adding
// an existing pair is a silent no-op. Both ids must exist.
func (s *Store) AddQuestion(ctx context.Context, sessionID, questionID int64) error {
	exists, err := s.sessionExists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}

	exists, err = s.questionExists(ctx, questionID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT OR IGNORE INTO practice_session_questions (session_id, question_id, added_at)
		VALUES (?, ?, ?)`,
		sessionID, questionID, toMillis(time.Now()),
	)
	if isForeignKeyViolation(err) {
		// Row deleted between the existence checks and the insert.
		return fmt.Errorf("session %d or question %d: %w", sessionID, questionID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("add question %d to session %d: %w", questionID, sessionID, err)
	}

	return nil
}

// RemoveQuestion removes a question from a session's membership set.
// Returns false if the pair did not exist.
func (s *Store) RemoveQuestion(ctx context.Context, sessionID, questionID int64) (bool, error) {
	res, err := s.sqlDB.ExecContext(ctx, `
		DELETE FROM practice_session_questions
		WHERE session_id = ? AND question_id = ?`,
		sessionID, questionID,
	)
	if err != nil {
		return false, fmt.Errorf("remove question %d from session %d: %w", questionID, sessionID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove question %d from session %d: %w", questionID, sessionID, err)
	}

	return n > 0, nil
}

// ListQuestionIDs returns the raw membership list of a session, most
// recently added first. A session with no members (or no session at
// all) yields an empty list.
func (s *Store) ListQuestionIDs(ctx context.Context, sessionID int64) ([]int64, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT question_id
		FROM practice_session_questions
		WHERE session_id = ?
		ORDER BY added_at DESC, question_id DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list session membership: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan membership row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate membership rows: %w", err)
	}

	return ids, nil
}

func (s *Store) sessionExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM practice_sessions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check session %d: %w", id, err)
	}

	return true, nil
}
