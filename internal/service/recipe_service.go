package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/suggest"
	"github.com/mmynk/recipelist/internal/validation"
)

// RecipeService implements the Connect RecipeService
type RecipeService struct {
	repos *repository.Repositories
}

var _ api.RecipeServiceHandler = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService backed by the given repositories.
func NewRecipeService(repos *repository.Repositories) *RecipeService {
	return &RecipeService{repos: repos}
}

// ListRecipes returns every recipe, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	slog.Info("ListRecipes request received")

	recipes, err := s.repos.Recipes.LoadAll(ctx)
	if err != nil {
		slog.Error("ListRecipes failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListRecipes successful", "count", len(recipes))

	return connect.NewResponse(&api.ListRecipesResponse{Recipes: recipes}), nil
}

// GetRecipe returns one recipe with the unit labels of its ingredients.
func (s *RecipeService) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	slog.Info("GetRecipe request received", "recipe_id", req.Msg.ID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	var (
		recipe  models.Recipe
		found   bool
		catalog []models.Ingredient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipe, found, err = s.repos.Recipes.FindByID(gctx, req.Msg.ID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.repos.Ingredients.LoadAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("GetRecipe failed", "recipe_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !found {
		return nil, toConnectError(fmt.Errorf("%w: recipe %s", repository.ErrNotFound, req.Msg.ID))
	}

	metrics := models.MetricsByName(catalog)
	labels := make(map[string]models.QtyMetric)
	for _, ing := range recipe.IngredientList {
		name := models.NormalizeName(ing.Text)
		if metric, ok := metrics[name]; ok {
			labels[name] = metric
		}
	}

	return connect.NewResponse(&api.GetRecipeResponse{Recipe: recipe, QtyMetrics: labels}), nil
}

// CreateRecipe adds a new recipe at the top of the list.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *connect.Request[api.CreateRecipeRequest]) (*connect.Response[api.CreateRecipeResponse], error) {
	slog.Info("CreateRecipe request received", "text", req.Msg.Text, "serving", req.Msg.Serving)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	recipe, err := s.repos.Recipes.Insert(ctx, models.Recipe{
		Text:    strings.TrimSpace(req.Msg.Text),
		Serving: req.Msg.Serving,
	})
	if err != nil {
		slog.Error("CreateRecipe failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Recipe created", "recipe_id", recipe.ID)

	return connect.NewResponse(&api.CreateRecipeResponse{Recipe: recipe}), nil
}

// UpdateRecipe replaces a stored recipe. Unknown ids are rejected and nothing is written.
func (s *RecipeService) UpdateRecipe(ctx context.Context, req *connect.Request[api.UpdateRecipeRequest]) (*connect.Response[api.UpdateRecipeResponse], error) {
	recipe := req.Msg.Recipe
	slog.Info("UpdateRecipe request received",
		"recipe_id", recipe.ID,
		"ingredients_count", len(recipe.IngredientList),
	)

	if strings.TrimSpace(recipe.ID) == "" {
		return nil, toConnectError(validation.Field("recipe.id", "is required"))
	}
	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	if id, dup := recipe.DuplicateIngredientID(); dup {
		return nil, toConnectError(validation.Field("recipe.ingredientList", fmt.Sprintf("has duplicate id %q", id)))
	}
	for i := range recipe.IngredientList {
		if recipe.IngredientList[i].ID == "" {
			recipe.IngredientList[i].ID = uuid.NewString()
		}
	}

	found, err := s.repos.Recipes.UpsertByID(ctx, recipe)
	if err != nil {
		slog.Error("UpdateRecipe failed", "recipe_id", recipe.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !found {
		return nil, toConnectError(fmt.Errorf("%w: recipe %s", repository.ErrNotFound, recipe.ID))
	}

	slog.Info("Recipe updated", "recipe_id", recipe.ID)

	return connect.NewResponse(&api.UpdateRecipeResponse{Recipe: recipe}), nil
}

// DeleteRecipe removes a recipe and then every shopping list reference to it.
// The two writes are separate; if the second fails the recipe stays deleted
// and the dangling references are skipped when lists are aggregated.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	slog.Info("DeleteRecipe request received", "recipe_id", req.Msg.ID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	removed, err := s.repos.Recipes.DeleteByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("DeleteRecipe failed", "recipe_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !removed {
		return nil, toConnectError(fmt.Errorf("%w: recipe %s", repository.ErrNotFound, req.Msg.ID))
	}

	updated := 0
	err = s.repos.ShoppingLists.Mutate(ctx, func(lists []models.ShoppingList) ([]models.ShoppingList, bool, error) {
		for i := range lists {
			if lists[i].RemoveRecipe(req.Msg.ID) {
				updated++
			}
		}
		return lists, updated > 0, nil
	})
	if err != nil {
		slog.Error("Failed to remove deleted recipe from shopping lists", "recipe_id", req.Msg.ID, "error", err)
		return nil, toConnectError(fmt.Errorf("recipe deleted but shopping lists not updated: %w", err))
	}

	slog.Info("Recipe deleted", "recipe_id", req.Msg.ID, "shopping_lists_updated", updated)

	return connect.NewResponse(&api.DeleteRecipeResponse{ShoppingListsUpdated: updated}), nil
}

// SetServing changes a recipe's base serving size.
func (s *RecipeService) SetServing(ctx context.Context, req *connect.Request[api.SetServingRequest]) (*connect.Response[api.SetServingResponse], error) {
	slog.Info("SetServing request received", "recipe_id", req.Msg.RecipeID, "serving", req.Msg.Serving)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	recipe, err := s.repos.Recipes.Update(ctx, req.Msg.RecipeID, func(r *models.Recipe) error {
		r.Serving = req.Msg.Serving
		return nil
	})
	if err != nil {
		slog.Error("SetServing failed", "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetServingResponse{Recipe: recipe}), nil
}

// PutIngredient adds an ingredient to a recipe, or updates the quantity when
// the recipe already lists an ingredient with the same normalized name.
func (s *RecipeService) PutIngredient(ctx context.Context, req *connect.Request[api.PutIngredientRequest]) (*connect.Response[api.PutIngredientResponse], error) {
	slog.Info("PutIngredient request received",
		"recipe_id", req.Msg.RecipeID,
		"text", req.Msg.Text,
		"quantity", req.Msg.Quantity,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	var ingredient models.RecipeIngredient
	recipe, err := s.repos.Recipes.Update(ctx, req.Msg.RecipeID, func(r *models.Recipe) error {
		ingredient = r.PutIngredient(req.Msg.Text, req.Msg.Quantity, uuid.NewString())
		return nil
	})
	if err != nil {
		slog.Error("PutIngredient failed", "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Ingredient saved", "recipe_id", recipe.ID, "ingredient_id", ingredient.ID)

	return connect.NewResponse(&api.PutIngredientResponse{Recipe: recipe, Ingredient: ingredient}), nil
}

// SetIngredientQuantity changes the quantity of one ingredient in a recipe.
func (s *RecipeService) SetIngredientQuantity(ctx context.Context, req *connect.Request[api.SetIngredientQuantityRequest]) (*connect.Response[api.SetIngredientQuantityResponse], error) {
	slog.Info("SetIngredientQuantity request received",
		"recipe_id", req.Msg.RecipeID,
		"ingredient_id", req.Msg.IngredientID,
		"quantity", req.Msg.Quantity,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	recipe, err := s.repos.Recipes.Update(ctx, req.Msg.RecipeID, func(r *models.Recipe) error {
		if !r.SetIngredientQuantity(req.Msg.IngredientID, req.Msg.Quantity) {
			return fmt.Errorf("%w: ingredient %s", repository.ErrNotFound, req.Msg.IngredientID)
		}
		return nil
	})
	if err != nil {
		slog.Error("SetIngredientQuantity failed", "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetIngredientQuantityResponse{Recipe: recipe}), nil
}

// RemoveIngredient deletes one ingredient from a recipe.
func (s *RecipeService) RemoveIngredient(ctx context.Context, req *connect.Request[api.RemoveIngredientRequest]) (*connect.Response[api.RemoveIngredientResponse], error) {
	slog.Info("RemoveIngredient request received",
		"recipe_id", req.Msg.RecipeID,
		"ingredient_id", req.Msg.IngredientID,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	recipe, err := s.repos.Recipes.Update(ctx, req.Msg.RecipeID, func(r *models.Recipe) error {
		if !r.RemoveIngredient(req.Msg.IngredientID) {
			return fmt.Errorf("%w: ingredient %s", repository.ErrNotFound, req.Msg.IngredientID)
		}
		return nil
	})
	if err != nil {
		slog.Error("RemoveIngredient failed", "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveIngredientResponse{Recipe: recipe}), nil
}

// SuggestIngredients autocompletes ingredient names from every recipe and the
// ingredient catalog. Catalog entries contribute their unit label.
func (s *RecipeService) SuggestIngredients(ctx context.Context, req *connect.Request[api.SuggestIngredientsRequest]) (*connect.Response[api.SuggestIngredientsResponse], error) {
	slog.Debug("SuggestIngredients request received", "query", req.Msg.Query)

	var (
		recipes []models.Recipe
		catalog []models.Ingredient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = s.repos.Recipes.LoadAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.repos.Ingredients.LoadAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("SuggestIngredients failed", "error", err)
		return nil, toConnectError(err)
	}

	metrics := models.MetricsByName(catalog)
	seen := make(map[string]bool)
	var candidates []api.IngredientSuggestion
	add := func(text string) {
		name := models.NormalizeName(text)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		candidates = append(candidates, api.IngredientSuggestion{Text: name, QtyMetric: metrics[name]})
	}
	for _, r := range recipes {
		for _, ing := range r.IngredientList {
			add(ing.Text)
		}
	}
	for _, ing := range catalog {
		add(ing.Text)
	}

	suggestions := suggest.Filter(req.Msg.Query, candidates, func(c api.IngredientSuggestion) string { return c.Text })

	return connect.NewResponse(&api.SuggestIngredientsResponse{Suggestions: suggestions}), nil
}
