// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

Flags take precedence over environment variables, which take precedence
over defaults:

  - -p / PORT: server port (default 3001)
  - -d / DATABASE_PATH: SQLite database file (default interview.db)

A .env file, if present, is loaded by main before parsing.
*/
package cliparse
