// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders server-side HTML pages.

Handlers depend on the Renderer interface:

	type Renderer interface {
		Render(w http.ResponseWriter, status int, name string, data any) error
	}

HTML is the production implementation. Templates are embedded from
templates/ and every page is parsed together with base.html:

	renderer, err := views.NewHTML()

# Views

	home     HomeData{Title}
	recipes  RecipesData{Recipes}
	recipe   RecipeData{Recipe}   (Recipe is nil when nothing matched)

# Template Functions

	plural   english.Plural   {{plural (len .Recipes) "recipe" ""}}
	ordinal  humanize.Ordinal
	comma    humanize.Comma
	lines    split text into non-empty trimmed lines
	inc      i + 1
*/
package views
