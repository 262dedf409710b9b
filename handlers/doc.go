// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Interview Prep API.

# Handler Types

Each handler is a struct holding the store dependency:

  - TagHandler: uniform CRUD for one lookup entity; instantiated once
    each for categories, companies, and roles
  - QuestionHandler: question CRUD, filtered listing, per-session listing
  - AnswerHandler: answers scoped to a question
  - SessionHandler: session CRUD and membership management

Handlers are created via constructor functions that accept *store.Store:

	questionHandler := handlers.NewQuestionHandler(st)
	roleHandler := handlers.NewTagHandler(st, store.TagRole)

# Status Codes

The store's error taxonomy maps onto HTTP statuses:

  - 201: create succeeded
  - 200: read, update, or delete succeeded
  - 400: malformed JSON/id, or a required field was empty
  - 404: no row matched, or a referenced id does not exist
  - 409: unique name/title collision
  - 500: unexpected storage fault (logged with detail, body stays opaque)

Update and delete acknowledge with {"success": true}; error bodies carry
a single error message.

# Filtering

GET /questions accepts category_id, company_id, role_id (exact match)
and search (case-insensitive substring). Filters compose with AND.
*/
package handlers
