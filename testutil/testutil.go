// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/recipe-box/cliparse"
	"github.com/danielhkuo/recipe-box/db"
	"github.com/danielhkuo/recipe-box/models"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.SQLite),
		LogLevel:     "info",
	}
}

// CreateTestRecipe inserts a recipe directly and returns its id
func CreateTestRecipe(t *testing.T, conn *sql.DB, title, ingredients, method string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO recipes (title, ingredients, method)
		VALUES (?, ?, ?)
		RETURNING id
	`, title, ingredients, method).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test recipe: %v", err)
	}

	return id
}

// FindRecipeByTitle looks a recipe up by title, returning nil if absent
func FindRecipeByTitle(t *testing.T, conn *sql.DB, title string) *models.Recipe {
	t.Helper()

	var r models.Recipe
	var ingredients, method sql.NullString
	err := conn.QueryRow(`
		SELECT id, title, ingredients, method FROM recipes WHERE title = ?
	`, title).Scan(&r.ID, &r.Title, &ingredients, &method)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to query recipe: %v", err)
	}

	r.Ingredients = ingredients.String
	r.Method = method.String
	return &r
}

// CountRecipes returns the number of rows in the recipes table
func CountRecipes(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&n); err != nil {
		t.Fatalf("Failed to count recipes: %v", err)
	}
	return n
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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

// AssertRedirect checks for a 302 pointing at location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected Location %q, got %q", location, got)
	}
}

// RenderCall records a single Render invocation
type RenderCall struct {
	Status int
	Name   string
	Data   any
}

// RecordingRenderer stands in for the HTML renderer. It records each call
// and writes {"view": name, "locals": data} as JSON.
type RecordingRenderer struct {
	mu    sync.Mutex
	calls []RenderCall
}

func (r *RecordingRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	r.mu.Lock()
	r.calls = append(r.calls, RenderCall{Status: status, Name: name, Data: data})
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(map[string]any{"view": name, "locals": data})
}

// Calls returns a copy of the recorded calls
func (r *RecordingRenderer) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RenderCall(nil), r.calls...)
}

// Last returns the most recent call, failing the test if there was none
func (r *RecordingRenderer) Last(t *testing.T) RenderCall {
	t.Helper()
	calls := r.Calls()
	if len(calls) == 0 {
		t.Fatal("Expected at least one Render call")
	}
	return calls[len(calls)-1]
}
