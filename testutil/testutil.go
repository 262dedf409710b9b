// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/interview-prep/db"
	"github.com/danielhkuo/interview-prep/store"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp dir
// with the full schema. Default categories are not seeded so tests can
// assert exact row counts.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "interview_test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps SetupTestDB in a store.
func SetupTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.New(conn), conn
}

// Int64Ptr returns a pointer to v, for optional foreign keys.
func Int64Ptr(v int64) *int64 {
	return &v
}

// CreateTestCategory inserts a category row and returns its id.
func CreateTestCategory(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()
	return insertTag(t, conn, "categories", "name", name)
}

// CreateTestCompany inserts a company row and returns its id.
func CreateTestCompany(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()
	return insertTag(t, conn, "companies", "name", name)
}

// CreateTestRole inserts a role row and returns its id.
func CreateTestRole(t *testing.T, conn *sql.DB, title string) int64 {
	t.Helper()
	return insertTag(t, conn, "roles", "title", title)
}

func insertTag(t *testing.T, conn *sql.DB, table, column, value string) int64 {
	t.Helper()

	res, err := conn.Exec(
		`INSERT INTO `+table+` (`+column+`, created_at) VALUES (?, ?)`,
		value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("Failed to insert into %s: %v", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read %s id: %v", table, err)
	}

	return id
}

// CreateTestQuestion inserts a question row with an explicit creation
// time (ordering tests need distinct timestamps) and returns its id.
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, categoryID, companyID, roleID *int64, createdAt time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO questions (question_text, category_id, company_id, role_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		text, nullable(categoryID), nullable(companyID), nullable(roleID),
		createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read question id: %v", err)
	}

	return id
}

// CreateTestAnswer inserts an answer row and returns its id.
func CreateTestAnswer(t *testing.T, conn *sql.DB, questionID int64, text string, createdAt time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO answers (question_id, answer_text, created_at)
		VALUES (?, ?, ?)`,
		questionID, text, createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read answer id: %v", err)
	}

	return id
}

// CreateTestSession inserts a practice session row and returns its id.
func CreateTestSession(t *testing.T, conn *sql.DB, name string, companyID, roleID *int64, createdAt time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO practice_sessions (name, company_id, role_id, created_at)
		VALUES (?, ?, ?, ?)`,
		name, nullable(companyID), nullable(roleID), createdAt.UTC().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read session id: %v", err)
	}

	return id
}

// AddTestSessionQuestion inserts a membership row with an explicit
// added_at time.
func AddTestSessionQuestion(t *testing.T, conn *sql.DB, sessionID, questionID int64, addedAt time.Time) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO practice_session_questions (session_id, question_id, added_at)
		VALUES (?, ?, ?)`,
		sessionID, questionID, addedAt.UTC().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("Failed to add test session question: %v", err)
	}
}

func nullable(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return n
}
