// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the recipe app.

# Handler Types

RecipeHandler serves every recipe route. It is built from the recipe model
and a view renderer:

	recipeHandler := handlers.NewRecipeHandler(models.Recipes, renderer)

Handler methods return an error rather than writing one, and are adapted with
middleware.Handle. Each method runs at most one SQL statement.

# Operations

	GET    /                   → Home          (view "home")
	GET    /recipes            → ListRecipes   (view "recipes")
	GET    /recipes/{id}       → GetRecipe     (view "recipe", maybe without a recipe)
	POST   /recipes            → CreateRecipe  (302 → /recipes)
	POST   /recipes/{id}/edit  → EditRecipe    (302 → /recipes/{id})
	DELETE /recipes/{id}       → DeleteRecipe  (200 or 404 JSON)

# Request Bodies

Create and edit read title, ingredients and method from JSON or form bodies.
Missing fields are stored as NULL; nothing is validated. A malformed body is
a 400.

# Ids

Only positive base-10 integers can match a row. Other ids behave like a
missing recipe: GetRecipe renders without one, EditRecipe redirects without
querying, DeleteRecipe answers 404.
*/
package handlers
