// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Categories
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);

-- Companies
CREATE TABLE IF NOT EXISTS companies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);

-- Roles
CREATE TABLE IF NOT EXISTS roles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);

-- Questions. Deleting a referenced tag nulls out the question's
-- foreign key; the question itself survives untagged.
CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_text TEXT NOT NULL,
    category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
    company_id INTEGER REFERENCES companies(id) ON DELETE SET NULL,
    role_id INTEGER REFERENCES roles(id) ON DELETE SET NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category_id ON questions(category_id);
CREATE INDEX IF NOT EXISTS idx_questions_company_id ON questions(company_id);
CREATE INDEX IF NOT EXISTS idx_questions_role_id ON questions(role_id);

-- Answers. Deleting a question deletes its answers.
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    answer_text TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers(question_id);

-- Practice Sessions
CREATE TABLE IF NOT EXISTS practice_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    company_id INTEGER REFERENCES companies(id) ON DELETE SET NULL,
    role_id INTEGER REFERENCES roles(id) ON DELETE SET NULL,
    created_at INTEGER NOT NULL
);

-- Practice Session Questions junction table. Membership is a set:
-- the composite primary key forbids duplicate pairs. added_at tracks
-- insertion order for display.
CREATE TABLE IF NOT EXISTS practice_session_questions (
    session_id INTEGER NOT NULL REFERENCES practice_sessions(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    added_at INTEGER NOT NULL,
    PRIMARY KEY (session_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_psq_question_id ON practice_session_questions(question_id);
`

// DefaultCategories is the fixed list seeded on first initialization.
var DefaultCategories = []string{
	"Work History & Background",
	"Reasons for Leaving / Career Transitions",
	"Motivation & Interest in the Role",
	"Strengths, Skills & Value",
	"Behavioral (General)",
	"Leadership & Management",
	"Work Style & Preferences",
	"Customer Service & Client Management",
	"Adaptability & Change",
	"Time Management & Organization",
	"Communication Skills",
	"Motivation, Values & Achievement",
	"Career Goals & Future Plans",
	"Compensation & Logistics",
	"Situational / Hypothetical",
	"Creative / Curveball",
	"Closing Questions",
}

// SeedDefaultCategories inserts the default category list, skipping any
// name that already exists. Safe to rerun.
func SeedDefaultCategories(db *sql.DB) error {
	now := time.Now().UTC().UnixMilli()
	for _, name := range DefaultCategories {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO categories (name, created_at) VALUES (?, ?)`,
			name, now,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}

	return nil
}
