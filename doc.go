// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Interview Prep API server.

Interview Prep is an interview-question tracker: questions are tagged by
category, company, and role, collect answers, and group into practice
sessions. The server exposes a JSON CRUD API over an embedded SQLite
database.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 3001 -d interview.db

# Configuration

Optional settings (flags override env; a .env file is loaded if present):

  - PORT (-p): server port (default: 3001)
  - DATABASE_PATH (-d): SQLite database file (default: interview.db)

On startup the server creates any missing tables and seeds the default
category list, both idempotently. A failed initialization is fatal.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: repository layer over the relational schema, typed errors
  - handlers: HTTP request handlers (tags, questions, answers, sessions)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - db: database open, schema creation, category seeding
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
