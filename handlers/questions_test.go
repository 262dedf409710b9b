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

func TestCreateQuestion(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)

	catID := testutil.CreateTestCategory(t, conn, "Behavioral")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.Question)
	}{
		{
			name: "valid question with category",
			requestBody: models.CreateQuestionRequest{
				QuestionText: "Tell me about a conflict",
				CategoryID:   &catID,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Question) {
				if resp.ID == 0 {
					t.Error("Expected non-zero id")
				}
				if resp.CategoryName == nil || *resp.CategoryName != "Behavioral" {
					t.Errorf("Expected joined category name 'Behavioral', got %v", resp.CategoryName)
				}
			},
		},
		{
			name: "untagged question",
			requestBody: models.CreateQuestionRequest{
				QuestionText: "Why this company?",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Question) {
				if resp.CategoryID != nil || resp.CompanyID != nil || resp.RoleID != nil {
					t.Error("Expected all tag ids to be null")
				}
			},
		},
		{
			name: "unknown tag reference",
			requestBody: models.CreateQuestionRequest{
				QuestionText: "orphan",
				CompanyID:    testutil.Int64Ptr(999),
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing question_text",
			requestBody:    models.CreateQuestionRequest{CategoryID: &catID},
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

			req := httptest.NewRequest("POST", "/questions", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.Question
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestListQuestionsFiltering(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)

	catID := testutil.CreateTestCategory(t, conn, "Behavioral")
	coID := testutil.CreateTestCompany(t, conn, "Acme")

	base := time.Now().Add(-time.Hour)
	testutil.CreateTestQuestion(t, conn, "Describe your leadership style", &catID, &coID, nil, base)
	testutil.CreateTestQuestion(t, conn, "Reverse a linked list", nil, &coID, nil, base.Add(time.Minute))
	testutil.CreateTestQuestion(t, conn, "Why Acme?", nil, nil, nil, base.Add(2*time.Minute))

	tests := []struct {
		name          string
		query         string
		expectedCount int
		expectedFirst string
	}{
		{"no filters newest first", "", 3, "Why Acme?"},
		{"category filter", "?category_id=" + strconv.FormatInt(catID, 10), 1, "Describe your leadership style"},
		{"company filter", "?company_id=" + strconv.FormatInt(coID, 10), 2, "Reverse a linked list"},
		{"search is case-insensitive", "?search=LEAD", 1, "Describe your leadership style"},
		{"composed filters", "?company_id=" + strconv.FormatInt(coID, 10) + "&search=linked", 1, "Reverse a linked list"},
		{"no matches", "?search=kubernetes", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp []models.Question
			testutil.AssertJSON(t, w, &resp)
			if len(resp) != tt.expectedCount {
				t.Fatalf("Expected %d questions, got %d", tt.expectedCount, len(resp))
			}
			if tt.expectedCount > 0 && resp[0].QuestionText != tt.expectedFirst {
				t.Errorf("Expected first question '%s', got '%s'", tt.expectedFirst, resp[0].QuestionText)
			}
		})
	}

	t.Run("invalid filter id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/questions?category_id=abc", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetQuestion(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)
	id := testutil.CreateTestQuestion(t, conn, "q", nil, nil, nil, time.Now())

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"existing question", strconv.FormatInt(id, 10), http.StatusOK},
		{"missing question", "999", http.StatusNotFound},
		{"invalid id", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/questions/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestUpdateQuestionFullReplace(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)

	catID := testutil.CreateTestCategory(t, conn, "Behavioral")
	id := testutil.CreateTestQuestion(t, conn, "original", &catID, nil, nil, time.Now())
	idStr := strconv.FormatInt(id, 10)

	// Omitting category_id clears the tag
	body, _ := json.Marshal(models.UpdateQuestionRequest{QuestionText: "rewritten"})
	req := httptest.NewRequest("PUT", "/questions/"+idStr, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.Update(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var text string
	var categoryID *int64
	err := conn.QueryRow("SELECT question_text, category_id FROM questions WHERE id = ?", id).
		Scan(&text, &categoryID)
	if err != nil {
		t.Fatalf("Failed to query question: %v", err)
	}
	if text != "rewritten" {
		t.Errorf("Expected text 'rewritten', got '%s'", text)
	}
	if categoryID != nil {
		t.Errorf("Expected category to be cleared, got %d", *categoryID)
	}
}

func TestDeleteQuestionCascades(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)

	now := time.Now()
	id := testutil.CreateTestQuestion(t, conn, "doomed", nil, nil, nil, now)
	testutil.CreateTestAnswer(t, conn, id, "a1", now)
	sessID := testutil.CreateTestSession(t, conn, "prep", nil, nil, now)
	testutil.AddTestSessionQuestion(t, conn, sessID, id, now)

	idStr := strconv.FormatInt(id, 10)
	req := httptest.NewRequest("DELETE", "/questions/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if n := testutil.CountRows(t, conn, "answers"); n != 0 {
		t.Errorf("Expected answers to cascade away, %d remain", n)
	}
	if n := testutil.CountRows(t, conn, "practice_session_questions"); n != 0 {
		t.Errorf("Expected memberships to cascade away, %d remain", n)
	}
	if n := testutil.CountRows(t, conn, "practice_sessions"); n != 1 {
		t.Errorf("Expected session to survive, count is %d", n)
	}
}

func TestListForSession(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	handler := NewQuestionHandler(st)

	catID := testutil.CreateTestCategory(t, conn, "Behavioral")
	base := time.Now().Add(-time.Hour)
	q1 := testutil.CreateTestQuestion(t, conn, "member", &catID, nil, nil, base)
	testutil.CreateTestQuestion(t, conn, "outsider", nil, nil, nil, base)
	sessID := testutil.CreateTestSession(t, conn, "prep", nil, nil, base)
	testutil.AddTestSessionQuestion(t, conn, sessID, q1, base)

	sessStr := strconv.FormatInt(sessID, 10)
	req := httptest.NewRequest("GET", "/questions/session/"+sessStr, nil)
	req.SetPathValue("sessionId", sessStr)
	w := httptest.NewRecorder()

	handler.ListForSession(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.Question
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 1 {
		t.Fatalf("Expected 1 question, got %d", len(resp))
	}
	if resp[0].QuestionText != "member" {
		t.Errorf("Expected 'member', got '%s'", resp[0].QuestionText)
	}
	if resp[0].CategoryName == nil || *resp[0].CategoryName != "Behavioral" {
		t.Errorf("Expected joined category name, got %v", resp[0].CategoryName)
	}
}
