// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// HTTPError is an error with a status code and a client-facing message.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError, keeping err as the cause
func NewHTTPError(status int, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Err: err}
}

// HandlerFunc is an http.HandlerFunc that reports failure by returning an error
// instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.HandlerFunc. An *HTTPError is written with its own
// status and message; any other error is logged and becomes a 500.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.Status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestID(r.Context()),
					"error", err,
				)
			}
			ErrorResponse(w, httpErr.Status, httpErr.Message)
			return
		}

		serverError(w, r, err)
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("unhandled error",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestID(r.Context()),
		"error", err,
	)
	ErrorResponse(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// RecoverPanic turns a panic in next into a 500 response and closes the
// connection.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				w.Header().Set("Connection", "close")
				serverError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
