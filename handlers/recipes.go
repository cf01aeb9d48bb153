// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielhkuo/recipe-box/data"
	"github.com/danielhkuo/recipe-box/middleware"
	"github.com/danielhkuo/recipe-box/models"
	"github.com/danielhkuo/recipe-box/views"
)

// AppTitle is shown on the home page
const AppTitle = "Recipe App"

// maxBodyBytes caps create and edit request bodies
const maxBodyBytes = 1 << 20

type RecipeHandler struct {
	recipes data.RecipeModel
	views   views.Renderer
}

func NewRecipeHandler(recipes data.RecipeModel, renderer views.Renderer) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, views: renderer}
}

// Home handles GET /
func (h *RecipeHandler) Home(w http.ResponseWriter, r *http.Request) error {
	return h.views.Render(w, http.StatusOK, views.Home, views.HomeData{Title: AppTitle})
}

// ListRecipes handles GET /recipes
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) error {
	recipes, err := h.recipes.List(r.Context())
	if err != nil {
		return err
	}

	return h.views.Render(w, http.StatusOK, views.Recipes, views.RecipesData{Recipes: recipes})
}

// GetRecipe handles GET /recipes/{id}
// A missing recipe is not an error: the view is rendered without one.
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) error {
	var recipe *models.Recipe

	if id, ok := parseID(r.PathValue("id")); ok {
		var err error
		recipe, err = h.recipes.Get(r.Context(), id)
		if err != nil && !errors.Is(err, data.ErrRecordNotFound) {
			return err
		}
	}

	return h.views.Render(w, http.StatusOK, views.Recipe, views.RecipeData{Recipe: recipe})
}

// CreateRecipe handles POST /recipes
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) error {
	input, err := readRecipeInput(w, r)
	if err != nil {
		return err
	}

	id, err := h.recipes.Insert(r.Context(), input)
	if err != nil {
		return err
	}

	slog.Info("recipe created", "recipe_id", id, "request_id", middleware.RequestID(r.Context()))

	http.Redirect(w, r, "/recipes", http.StatusFound)
	return nil
}

// EditRecipe handles POST /recipes/{id}/edit
// There is no existence check; editing a missing id still redirects.
func (h *RecipeHandler) EditRecipe(w http.ResponseWriter, r *http.Request) error {
	rawID := r.PathValue("id")

	input, err := readRecipeInput(w, r)
	if err != nil {
		return err
	}

	if id, ok := parseID(rawID); ok {
		n, err := h.recipes.Update(r.Context(), id, input)
		if err != nil {
			return err
		}
		slog.Info("recipe updated", "recipe_id", id, "rows", n, "request_id", middleware.RequestID(r.Context()))
	}

	http.Redirect(w, r, "/recipes/"+url.PathEscape(rawID), http.StatusFound)
	return nil
}

// DeleteRecipe handles DELETE /recipes/{id}
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		return middleware.NewHTTPError(http.StatusNotFound, models.MsgRecipeNotFound, nil)
	}

	err := h.recipes.Delete(r.Context(), id)
	if errors.Is(err, data.ErrRecordNotFound) {
		return middleware.NewHTTPError(http.StatusNotFound, models.MsgRecipeNotFound, err)
	}
	if err != nil {
		return err
	}

	slog.Info("recipe deleted", "recipe_id", id, "request_id", middleware.RequestID(r.Context()))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: models.MsgRecipeDeleted,
	})
	return nil
}

// parseID accepts positive base-10 integers. Anything else can never match
// a row.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// readRecipeInput reads title, ingredients and method from a JSON or form
// body. Fields missing from the body stay nil. A body of any other type is
// treated as empty.
func readRecipeInput(w http.ResponseWriter, r *http.Request) (models.RecipeInput, error) {
	var input models.RecipeInput

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		err := middleware.ParseJSONBody(r, &input)
		if err != nil && !errors.Is(err, io.EOF) {
			return models.RecipeInput{}, middleware.NewHTTPError(http.StatusBadRequest, "invalid request body", err)
		}
		return input, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return models.RecipeInput{}, middleware.NewHTTPError(http.StatusBadRequest, "invalid request body", err)
		}

	default:
		if err := r.ParseForm(); err != nil {
			return models.RecipeInput{}, middleware.NewHTTPError(http.StatusBadRequest, "invalid request body", err)
		}
	}

	input.Title = formValue(r.PostForm, "title")
	input.Ingredients = formValue(r.PostForm, "ingredients")
	input.Method = formValue(r.PostForm, "method")

	return input, nil
}

func formValue(form url.Values, key string) *string {
	if !form.Has(key) {
		return nil
	}
	v := form.Get(key)
	return &v
}
