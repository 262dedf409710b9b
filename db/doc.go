// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles opening the SQLite database and creating the schema.

# Opening

Open returns a database handle with the pragmas the rest of the system
depends on:

	conn, err := db.Open("interview.db")

foreign_keys is enabled so the cascade and null-out rules below are
enforced by the storage engine itself.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

SeedDefaultCategories inserts the fixed list of 17 default category
names, skipping any that already exist. Also safe to rerun.

# Tables

  - categories, companies, roles: named lookup tables, unique name/title
  - questions: the catalog, optionally tagged by category/company/role
  - answers: owned by a question
  - practice_sessions: named groupings, optionally tagged
  - practice_session_questions: session membership join table

# Relationships

	categories 1──* questions (ON DELETE SET NULL)
	companies  1──* questions, practice_sessions (ON DELETE SET NULL)
	roles      1──* questions, practice_sessions (ON DELETE SET NULL)
	questions  1──* answers (ON DELETE CASCADE)
	practice_sessions *──* questions (via practice_session_questions,
	                                  ON DELETE CASCADE both ways)

# Timestamps

created_at and added_at are stored as UTC millisecond integers and
converted to time.Time at the access layer.
*/
package db
