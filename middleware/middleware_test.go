// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/goleak"

	"github.com/danielhkuo/recipe-box/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	var seenID string
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenID = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}

	// Request ID is generated, exposed to the handler, and echoed back
	if _, err := uuid.Parse(seenID); err != nil {
		t.Errorf("Expected a UUID request ID, got %q", seenID)
	}
	if got := w.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("Expected %s header %q, got %q", RequestIDHeader, seenID, got)
	}
}

func TestWithLogging_KeepsIncomingRequestID(t *testing.T) {
	var seenID string
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	handler(w, req)

	if seenID != "abc-123" {
		t.Errorf("Expected incoming request ID to be kept, got %q", seenID)
	}
	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Error("Expected incoming request ID to be echoed")
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Found", http.StatusFound, ""},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, `{"error":"Recipe not found"}`},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/recipes", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestID_OutsideRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got %q", id)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "message response",
			statusCode: http.StatusOK,
			data:       models.MessageResponse{Message: models.MsgRecipeDeleted},
			expected:   `{"message":"Recipe deleted successfully"}`,
		},
		{
			name:       "recipe",
			statusCode: http.StatusOK,
			data:       models.Recipe{ID: 7, Title: "Soup", Ingredients: "Water", Method: "Boil"},
			expected:   `{"id":7,"title":"Soup","ingredients":"Water","method":"Boil"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusNotFound,
			data:       models.ErrorResponse{Error: models.MsgRecipeNotFound},
			expected:   `{"error":"Recipe not found"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "invalid request body"},
		{"not found", http.StatusNotFound, "Recipe not found"},
		{"too many requests", http.StatusTooManyRequests, "rate limit exceeded"},
		{"internal error", http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			// Only the error key is present
			var raw map[string]any
			if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if raw["error"] != tc.message {
				t.Errorf("Expected error '%s', got '%v'", tc.message, raw["error"])
			}
			if _, ok := raw["message"]; ok {
				t.Error("Expected no message key in error response")
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"title":"Soup","ingredients":"Water"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.RecipeInput
		err := ParseJSONBody(req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Title == nil || *parsed.Title != "Soup" {
			t.Errorf("Expected title 'Soup', got %v", parsed.Title)
		}
		if parsed.Method != nil {
			t.Errorf("Expected absent method to stay nil, got %q", *parsed.Method)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.RecipeInput
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.RecipeInput
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		for _, body := range []string{`{"title":"a"} garbage`, `{"title":"a"}{"title":"b"}`} {
			req := httptest.NewRequest("POST", "/", strings.NewReader(body))

			var parsed models.RecipeInput
			if err := ParseJSONBody(req, &parsed); !errors.Is(err, ErrTrailingData) {
				t.Errorf("Body %q: expected ErrTrailingData, got %v", body, err)
			}
		}
	})

	t.Run("trailing whitespace allowed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("{\"title\":\"a\"}\n  "))

		var parsed models.RecipeInput
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"title":"Test","unknown_field":"ignored"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.RecipeInput
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Title == nil || *parsed.Title != "Test" {
			t.Errorf("Expected title 'Test', got %v", parsed.Title)
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/recipes/1", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to be '*'")
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "" {
			t.Error("Expected no Access-Control-Allow-Credentials header")
		}

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "DELETE", "OPTIONS"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/recipes", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin not to echo the request origin")
		}
		if w.Header().Get("Access-Control-Allow-Credentials") != "" {
			t.Error("Expected no Access-Control-Allow-Credentials header")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/recipes", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trustProxy bool
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For ignored without trusted proxy",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "10.0.0.1",
		},
		{
			name:       "X-Real-IP ignored without trusted proxy",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "10.0.0.1",
		},
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"},
			remoteAddr: "127.0.0.1:12345",
			trustProxy: true,
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			trustProxy: true,
			expectedIP: "203.0.113.50",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr",
			headers:    map[string]string{},
			remoteAddr: "[2001:db8::1]:54321",
			expectedIP: "2001:db8::1",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req, tc.trustProxy); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
