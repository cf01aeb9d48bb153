// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the app.

# Domain Types

  - Recipe: id, title, ingredients, method

# Request Types

RecipeInput holds the fields accepted by create and edit. Each field is a
pointer so that a field missing from the request can be told apart from an
empty one:

	title=Soup&method=Boil   → Title="Soup", Ingredients=nil, Method="Boil"

Nil fields are written to the database as NULL.

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - ErrorResponse: error, message

# Constants

Fixed response messages:

	MsgRecipeDeleted  = "Recipe deleted successfully"
	MsgRecipeNotFound = "Recipe not found"
*/
package models
