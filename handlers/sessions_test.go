// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/interview-prep/models"
	"github.com/danielhkuo/interview-prep/testutil"
)

func TestCreateSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	coID := testutil.CreateTestCompany(t, conn, "Acme")
	roleID := testutil.CreateTestRole(t, conn, "Backend Engineer")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Session)
	}{
		{
			name: "valid session with tags",
			requestBody: models.CreateSessionRequest{
				Name:      "Acme onsite prep",
				CompanyID: &coID,
				RoleID:    &roleID,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Session) {
				if resp.ID == 0 {
					t.Error("Expected non-zero id")
				}
				if resp.CompanyName == nil || *resp.CompanyName != "Acme" {
					t.Errorf("Expected joined company name, got %v", resp.CompanyName)
				}
				if resp.RoleTitle == nil || *resp.RoleTitle != "Backend Engineer" {
					t.Errorf("Expected joined role title, got %v", resp.RoleTitle)
				}
			},
		},
		{
			name:           "untagged session",
			requestBody:    models.CreateSessionRequest{Name: "General practice"},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown company reference",
			requestBody: models.CreateSessionRequest{
				Name:      "orphan",
				CompanyID: testutil.Int64Ptr(999),
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing name",
			requestBody:    models.CreateSessionRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest("POST", "/sessions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.Session
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)
	id := testutil.CreateTestSession(t, conn, "prep", nil, nil, time.Now())

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing session", strconv.FormatInt(id, 10), http.StatusOK},
		{"missing session", "999", http.StatusNotFound},
		{"invalid id", "-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/sessions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestUpdateSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	coID := testutil.CreateTestCompany(t, conn, "Acme")
	id := testutil.CreateTestSession(t, conn, "draft", &coID, nil, time.Now())
	idStr := strconv.FormatInt(id, 10)

	body, _ := json.Marshal(models.UpdateSessionRequest{Name: "final"})
	req := httptest.NewRequest("PUT", "/sessions/"+idStr, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.Update(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var name string
	var companyID *int64
	err := conn.QueryRow("SELECT name, company_id FROM practice_sessions WHERE id = ?", id).
		Scan(&name, &companyID)
	if err != nil {
		t.Fatalf("Failed to query session: %v", err)
	}
	if name != "final" {
		t.Errorf("Expected name 'final', got '%s'", name)
	}
	if companyID != nil {
		t.Error("Expected company to be cleared by full replace")
	}
}

func TestDeleteSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	now := time.Now()
	qID := testutil.CreateTestQuestion(t, conn, "survivor", nil, nil, nil, now)
	id := testutil.CreateTestSession(t, conn, "doomed", nil, nil, now)
	testutil.AddTestSessionQuestion(t, conn, id, qID, now)

	idStr := strconv.FormatInt(id, 10)
	req := httptest.NewRequest("DELETE", "/sessions/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, conn, "practice_session_questions"); n != 0 {
		t.Errorf("Expected memberships to cascade away, %d remain", n)
	}
	if n := testutil.CountRows(t, conn, "questions"); n != 1 {
		t.Errorf("Question should survive session delete, count is %d", n)
	}
}

func TestAddQuestionToSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	qID := testutil.CreateTestQuestion(t, conn, "q", nil, nil, nil, time.Now())
	sessID := testutil.CreateTestSession(t, conn, "prep", nil, nil, time.Now())

	addRequest := func(sessionID, questionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/sessions/"+sessionID+"/questions/"+questionID, nil)
		req.SetPathValue("sessionId", sessionID)
		req.SetPathValue("questionId", questionID)
		w := httptest.NewRecorder()
		handler.AddQuestion(w, req)
		return w
	}

	sessStr := strconv.FormatInt(sessID, 10)
	qStr := strconv.FormatInt(qID, 10)

	t.Run("first add succeeds", func(t *testing.T) {
		w := addRequest(sessStr, qStr)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SuccessResponse
		testutil.AssertJSON(t, w, &resp)
		if !resp.Success {
			t.Error("Expected success true")
		}
	})

	t.Run("repeat add is idempotent", func(t *testing.T) {
		w := addRequest(sessStr, qStr)
		testutil.AssertStatus(t, w, http.StatusOK)

		if n := testutil.CountRows(t, conn, "practice_session_questions"); n != 1 {
			t.Errorf("Expected 1 membership row, got %d", n)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		w := addRequest("999", qStr)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("missing question", func(t *testing.T) {
		w := addRequest(sessStr, "999")
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestRemoveQuestionFromSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	now := time.Now()
	qID := testutil.CreateTestQuestion(t, conn, "q", nil, nil, nil, now)
	sessID := testutil.CreateTestSession(t, conn, "prep", nil, nil, now)
	testutil.AddTestSessionQuestion(t, conn, sessID, qID, now)

	sessStr := strconv.FormatInt(sessID, 10)
	qStr := strconv.FormatInt(qID, 10)

	removeRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("DELETE", "/sessions/"+sessStr+"/questions/"+qStr, nil)
		req.SetPathValue("sessionId", sessStr)
		req.SetPathValue("questionId", qStr)
		w := httptest.NewRecorder()
		handler.RemoveQuestion(w, req)
		return w
	}

	w := removeRequest()
	testutil.AssertStatus(t, w, http.StatusOK)

	// Pair already gone
	w = removeRequest()
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Question not found in session" {
		t.Errorf("Expected 'Question not found in session', got '%s'", resp.Error)
	}
}

func TestListSessionQuestionIDs(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewSessionHandler(st)

	base := time.Now().Add(-time.Hour)
	q1 := testutil.CreateTestQuestion(t, conn, "first", nil, nil, nil, base)
	q2 := testutil.CreateTestQuestion(t, conn, "second", nil, nil, nil, base)
	sessID := testutil.CreateTestSession(t, conn, "prep", nil, nil, base)
	testutil.AddTestSessionQuestion(t, conn, sessID, q1, base.Add(time.Minute))
	testutil.AddTestSessionQuestion(t, conn, sessID, q2, base.Add(2*time.Minute))

	sessStr := strconv.FormatInt(sessID, 10)
	req := httptest.NewRequest("GET", "/sessions/"+sessStr+"/questions", nil)
	req.SetPathValue("sessionId", sessStr)
	w := httptest.NewRecorder()

	handler.ListQuestionIDs(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.SessionQuestionRef
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("Expected 2 refs, got %d", len(resp))
	}
	if resp[0].QuestionID != q2 || resp[1].QuestionID != q1 {
		t.Errorf("Expected most recently added first, got %v", resp)
	}

	// Unknown session yields an empty array
	req = httptest.NewRequest("GET", "/sessions/999/questions", nil)
	req.SetPathValue("sessionId", "999")
	w = httptest.NewRecorder()

	handler.ListQuestionIDs(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var empty []models.SessionQuestionRef
	testutil.AssertJSON(t, w, &empty)
	if len(empty) != 0 {
		t.Errorf("Expected empty list, got %v", empty)
	}
}
