package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/recipelist/internal/aggregator"
	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/metrics"
	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/suggest"
	"github.com/mmynk/recipelist/internal/validation"
)

// defaultReqServing is used when a recipe is added to a list without a serving count.
const defaultReqServing models.Amount = "1"

// ShoppingListService implements the Connect ShoppingListService
type ShoppingListService struct {
	repos   *repository.Repositories
	metrics *metrics.Metrics
}

var _ api.ShoppingListServiceHandler = (*ShoppingListService)(nil)

// NewShoppingListService creates a new ShoppingListService. m may be nil.
func NewShoppingListService(repos *repository.Repositories, m *metrics.Metrics) *ShoppingListService {
	return &ShoppingListService{repos: repos, metrics: m}
}

// ListShoppingLists returns every shopping list, newest first.
func (s *ShoppingListService) ListShoppingLists(ctx context.Context, req *connect.Request[api.ListShoppingListsRequest]) (*connect.Response[api.ListShoppingListsResponse], error) {
	slog.Info("ListShoppingLists request received")

	lists, err := s.repos.ShoppingLists.LoadAll(ctx)
	if err != nil {
		slog.Error("ListShoppingLists failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListShoppingLists successful", "count", len(lists))

	return connect.NewResponse(&api.ListShoppingListsResponse{ShoppingLists: lists}), nil
}

// GetShoppingList returns a list with its referenced recipes resolved.
func (s *ShoppingListService) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.GetShoppingListResponse], error) {
	slog.Info("GetShoppingList request received", "shopping_list_id", req.Msg.ID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	list, recipesByID, err := s.loadListWithRecipes(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetShoppingList failed", "shopping_list_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.GetShoppingListResponse{
		ShoppingList:     list,
		Recipes:          []models.Recipe{},
		MissingRecipeIDs: []string{},
	}
	for _, ref := range list.RecipeList {
		if recipe, ok := recipesByID[ref.ID]; ok {
			resp.Recipes = append(resp.Recipes, recipe)
		} else {
			resp.MissingRecipeIDs = append(resp.MissingRecipeIDs, ref.ID)
		}
	}

	slog.Info("GetShoppingList successful",
		"shopping_list_id", list.ID,
		"recipes_count", len(resp.Recipes),
		"missing_count", len(resp.MissingRecipeIDs),
	)

	return connect.NewResponse(resp), nil
}

// CreateShoppingList adds a new, empty shopping list at the top of the list.
func (s *ShoppingListService) CreateShoppingList(ctx context.Context, req *connect.Request[api.CreateShoppingListRequest]) (*connect.Response[api.CreateShoppingListResponse], error) {
	slog.Info("CreateShoppingList request received", "text", req.Msg.Text)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	list, err := s.repos.ShoppingLists.Insert(ctx, models.ShoppingList{
		Text:       strings.TrimSpace(req.Msg.Text),
		RecipeList: []models.RecipeRef{},
	})
	if err != nil {
		slog.Error("CreateShoppingList failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Shopping list created", "shopping_list_id", list.ID)

	return connect.NewResponse(&api.CreateShoppingListResponse{ShoppingList: list}), nil
}

// DeleteShoppingList removes a shopping list. The referenced recipes are kept.
func (s *ShoppingListService) DeleteShoppingList(ctx context.Context, req *connect.Request[api.DeleteShoppingListRequest]) (*connect.Response[api.DeleteShoppingListResponse], error) {
	slog.Info("DeleteShoppingList request received", "shopping_list_id", req.Msg.ID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	removed, err := s.repos.ShoppingLists.DeleteByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("DeleteShoppingList failed", "shopping_list_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !removed {
		return nil, toConnectError(fmt.Errorf("%w: shopping list %s", repository.ErrNotFound, req.Msg.ID))
	}

	slog.Info("Shopping list deleted", "shopping_list_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteShoppingListResponse{}), nil
}

// AddRecipe references a recipe from a shopping list. A recipe can be on a list only once.
func (s *ShoppingListService) AddRecipe(ctx context.Context, req *connect.Request[api.AddRecipeRequest]) (*connect.Response[api.AddRecipeResponse], error) {
	slog.Info("AddRecipe request received",
		"shopping_list_id", req.Msg.ShoppingListID,
		"recipe_id", req.Msg.RecipeID,
		"req_serving", req.Msg.ReqServing,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	_, found, err := s.repos.Recipes.FindByID(ctx, req.Msg.RecipeID)
	if err != nil {
		slog.Error("AddRecipe failed", "recipe_id", req.Msg.RecipeID, "error", err)
		return nil, toConnectError(err)
	}
	if !found {
		return nil, toConnectError(fmt.Errorf("%w: recipe %s", repository.ErrNotFound, req.Msg.RecipeID))
	}

	reqServing := req.Msg.ReqServing
	if reqServing == "" {
		reqServing = defaultReqServing
	}

	list, err := s.repos.ShoppingLists.Update(ctx, req.Msg.ShoppingListID, func(l *models.ShoppingList) error {
		if !l.AddRecipe(models.RecipeRef{ID: req.Msg.RecipeID, ReqServing: reqServing}) {
			return errAlreadyOnList
		}
		return nil
	})
	if err != nil {
		slog.Error("AddRecipe failed", "shopping_list_id", req.Msg.ShoppingListID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Recipe added to shopping list", "shopping_list_id", list.ID, "recipe_id", req.Msg.RecipeID)

	return connect.NewResponse(&api.AddRecipeResponse{ShoppingList: list}), nil
}

// SetRequestedServing changes how many servings of a recipe the list needs.
func (s *ShoppingListService) SetRequestedServing(ctx context.Context, req *connect.Request[api.SetRequestedServingRequest]) (*connect.Response[api.SetRequestedServingResponse], error) {
	slog.Info("SetRequestedServing request received",
		"shopping_list_id", req.Msg.ShoppingListID,
		"recipe_id", req.Msg.RecipeID,
		"req_serving", req.Msg.ReqServing,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	list, err := s.repos.ShoppingLists.Update(ctx, req.Msg.ShoppingListID, func(l *models.ShoppingList) error {
		if !l.SetRequestedServing(req.Msg.RecipeID, req.Msg.ReqServing) {
			return fmt.Errorf("%w: recipe %s is not on the list", repository.ErrNotFound, req.Msg.RecipeID)
		}
		return nil
	})
	if err != nil {
		slog.Error("SetRequestedServing failed", "shopping_list_id", req.Msg.ShoppingListID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetRequestedServingResponse{ShoppingList: list}), nil
}

// RemoveRecipe drops a recipe reference from a shopping list.
func (s *ShoppingListService) RemoveRecipe(ctx context.Context, req *connect.Request[api.RemoveRecipeRequest]) (*connect.Response[api.RemoveRecipeResponse], error) {
	slog.Info("RemoveRecipe request received",
		"shopping_list_id", req.Msg.ShoppingListID,
		"recipe_id", req.Msg.RecipeID,
	)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	list, err := s.repos.ShoppingLists.Update(ctx, req.Msg.ShoppingListID, func(l *models.ShoppingList) error {
		if !l.RemoveRecipe(req.Msg.RecipeID) {
			return fmt.Errorf("%w: recipe %s is not on the list", repository.ErrNotFound, req.Msg.RecipeID)
		}
		return nil
	})
	if err != nil {
		slog.Error("RemoveRecipe failed", "shopping_list_id", req.Msg.ShoppingListID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemoveRecipeResponse{ShoppingList: list}), nil
}

// SuggestRecipes autocompletes recipe names for the add-recipe picker.
func (s *ShoppingListService) SuggestRecipes(ctx context.Context, req *connect.Request[api.SuggestRecipesRequest]) (*connect.Response[api.SuggestRecipesResponse], error) {
	slog.Debug("SuggestRecipes request received", "query", req.Msg.Query)

	recipes, err := s.repos.Recipes.LoadAll(ctx)
	if err != nil {
		slog.Error("SuggestRecipes failed", "error", err)
		return nil, toConnectError(err)
	}

	matches := suggest.Filter(req.Msg.Query, recipes, func(r models.Recipe) string { return r.Text })

	return connect.NewResponse(&api.SuggestRecipesResponse{Recipes: matches}), nil
}

// GenerateIngredientList aggregates the ingredients of every recipe on a list,
// scaled to the requested servings.
func (s *ShoppingListService) GenerateIngredientList(ctx context.Context, req *connect.Request[api.GenerateIngredientListRequest]) (*connect.Response[api.GenerateIngredientListResponse], error) {
	slog.Info("GenerateIngredientList request received", "shopping_list_id", req.Msg.ShoppingListID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	var (
		list        models.ShoppingList
		recipesByID map[string]models.Recipe
		catalog     []models.Ingredient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, recipesByID, err = s.loadListWithRecipes(gctx, req.Msg.ShoppingListID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.repos.Ingredients.LoadAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("GenerateIngredientList failed", "shopping_list_id", req.Msg.ShoppingListID, "error", err)
		return nil, toConnectError(err)
	}

	entries := aggregator.Aggregate(list, recipesByID)
	unitLabels := models.MetricsByName(catalog)

	totals := make([]api.IngredientTotal, 0, len(entries))
	for _, entry := range aggregator.Sorted(entries) {
		total := api.IngredientTotal{
			Name:          entry.Name,
			TotalQty:      entry.TotalQty,
			QtyMetric:     unitLabels[entry.Name],
			Contributions: []api.RecipeContribution{},
		}
		// Keep contributions in shopping list order
		for _, ref := range list.RecipeList {
			c, ok := entry.Contributions[ref.ID]
			if !ok {
				continue
			}
			total.Contributions = append(total.Contributions, api.RecipeContribution{
				RecipeID:           c.RecipeID,
				RecipeText:         c.Recipe.Text,
				ServingsRequired:   c.ServingsRequired,
				DefaultServingSize: c.DefaultServingSize,
				Ratio:              finiteOrNil(c.Ratio),
				Quantity:           finiteOrNil(c.Quantity),
			})
		}
		totals = append(totals, total)
	}

	if s.metrics != nil {
		s.metrics.ObserveIngredientList(len(totals))
	}

	slog.Info("GenerateIngredientList successful",
		"shopping_list_id", list.ID,
		"recipes_count", len(list.RecipeList),
		"ingredients_count", len(totals),
	)

	return connect.NewResponse(&api.GenerateIngredientListResponse{
		ShoppingList:  list,
		Ingredients:   totals,
		ClipboardText: aggregator.ClipboardText(entries),
	}), nil
}

// loadListWithRecipes loads a shopping list and the recipe lookup table concurrently.
func (s *ShoppingListService) loadListWithRecipes(ctx context.Context, listID string) (models.ShoppingList, map[string]models.Recipe, error) {
	var (
		list    models.ShoppingList
		found   bool
		recipes []models.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, found, err = s.repos.ShoppingLists.FindByID(gctx, listID)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = s.repos.Recipes.LoadAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ShoppingList{}, nil, err
	}
	if !found {
		return models.ShoppingList{}, nil, fmt.Errorf("%w: shopping list %s", repository.ErrNotFound, listID)
	}

	recipesByID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		recipesByID[r.ID] = r
	}
	return list, recipesByID, nil
}

func finiteOrNil(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
