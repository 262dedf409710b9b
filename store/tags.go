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
)

// TagKind is the closed set of named lookup entities. All three share
// one row shape (id, display name, created_at) and one CRUD contract;
// the kind selects the table and display column.
type TagKind int

const (
	TagCategory TagKind = iota
	TagCompany
	TagRole
)

func (k TagKind) String() string {
	switch k {
	case TagCompany:
		return "company"
	case TagRole:
		return "role"
	default:
		return "category"
	}
}

func (k TagKind) table() string {
	switch k {
	case TagCompany:
		return "companies"
	case TagRole:
		return "roles"
	default:
		return "categories"
	}
}

func (k TagKind) column() string {
	if k == TagRole {
		return "title"
	}
	return "name"
}

// Field is the client-facing name of the required text field ("name"
// or "title").
func (k TagKind) Field() string {
	return k.column()
}

// Tag is one row of a lookup table. Name holds the display column
// regardless of kind (roles call it title at the boundary).
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// ListTags returns all rows of a kind, ordered alphabetically by
// display name.
func (s *Store) ListTags(ctx context.Context, kind TagKind) ([]Tag, error) {
	query := fmt.Sprintf(
		`SELECT id, %s, created_at FROM %s ORDER BY %s`,
		kind.column(), kind.table(), kind.column(),
	)
	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s rows: %w", kind, err)
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		t.CreatedAt = fromMillis(createdAt)
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", kind, err)
	}

	return tags, nil
}

// GetTag returns one row by id, or ErrNotFound.
func (s *Store) GetTag(ctx context.Context, kind TagKind, id int64) (Tag, error) {
	query := fmt.Sprintf(
		`SELECT id, %s, created_at FROM %s WHERE id = ?`,
		kind.column(), kind.table(),
	)

	var t Tag
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Tag{}, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return Tag{}, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	t.CreatedAt = fromMillis(createdAt)

	return t, nil
}

// CreateTag inserts a new row. The display name is required and must
// not collide with an existing row of the same kind.
func (s *Store) CreateTag(ctx context.Context, kind TagKind, name string) (Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tag{}, fmt.Errorf("%s %s is required: %w", kind, kind.Field(), ErrValidation)
	}

	now := time.Now()
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, created_at) VALUES (?, ?)`,
		kind.table(), kind.column(),
	)
	res, err := s.sqlDB.ExecContext(ctx, query, name, toMillis(now))
	if isUniqueViolation(err) {
		return Tag{}, fmt.Errorf("%s %q: %w", kind, name, ErrConflict)
	}
	if err != nil {
		return Tag{}, fmt.Errorf("insert %s: %w", kind, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Tag{}, fmt.Errorf("insert %s id: %w", kind, err)
	}

	return Tag{ID: id, Name: name, CreatedAt: fromMillis(toMillis(now))}, nil
}

// UpdateTag replaces the display name of the row with the given id.
// Returns false if no row matched.
func (s *Store) UpdateTag(ctx context.Context, kind TagKind, id int64, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("%s %s is required: %w", kind, kind.Field(), ErrValidation)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET %s = ? WHERE id = ?`,
		kind.table(), kind.column(),
	)
	res, err := s.sqlDB.ExecContext(ctx, query, name, id)
	if isUniqueViolation(err) {
		return false, fmt.Errorf("%s %q: %w", kind, name, ErrConflict)
	}
	if err != nil {
		return false, fmt.Errorf("update %s %d: %w", kind, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update %s %d: %w", kind, id, err)
	}

	return n > 0, nil
}

// DeleteTag removes the row with the given id. Returns false if no row
// matched. Questions and sessions referencing the row are nulled out by
// the schema's ON DELETE SET NULL rules.
func (s *Store) DeleteTag(ctx context.Context, kind TagKind, id int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, kind.table())
	res, err := s.sqlDB.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete %s %d: %w", kind, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s %d: %w", kind, id, err)
	}

	return n > 0, nil
}
