// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Response messages
const (
	MsgRecipeDeleted  = "Recipe deleted successfully"
	MsgRecipeNotFound = "Recipe not found"
)

// Domain types

type Recipe struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Ingredients string `json:"ingredients"`
	Method      string `json:"method"`
}

// Request types

// RecipeInput carries the editable fields of a recipe.
// A nil field was absent from the request and is stored as NULL.
type RecipeInput struct {
	Title       *string `json:"title"`
	Ingredients *string `json:"ingredients"`
	Method      *string `json:"method"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
