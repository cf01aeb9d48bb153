// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/recipe-box/models"
)

// View names
const (
	Home    = "home"
	Recipes = "recipes"
	Recipe  = "recipe"
)

var ErrUnknownView = errors.New("unknown view")

// Renderer renders a named view with a data payload.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Page payloads

type HomeData struct {
	Title string
}

type RecipesData struct {
	Recipes []models.Recipe
}

// RecipeData carries the recipe for the single-recipe view. Recipe is nil
// when no recipe matched the requested id.
type RecipeData struct {
	Recipe *models.Recipe
}

//go:embed templates/*.html
var templateFS embed.FS

// HTML renders views from the embedded templates.
type HTML struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"plural":  english.Plural,
	"ordinal": humanize.Ordinal,
	"comma":   humanize.Comma,
	"lines":   lines,
	"inc":     func(i int) int { return i + 1 },
}

// NewHTML parses every page against the shared base layout
func NewHTML() (*HTML, error) {
	h := &HTML{pages: make(map[string]*template.Template)}

	for _, name := range []string{Home, Recipes, Recipe} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		h.pages[name] = tmpl
	}

	return h, nil
}

// Render executes the view into a buffer first so that a template error
// never leaves a half-written page behind.
func (h *HTML) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := h.pages[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// lines splits free text into trimmed, non-empty lines
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
