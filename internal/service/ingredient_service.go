package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/validation"
)

// IngredientService implements the Connect IngredientService over the ingredient catalog
type IngredientService struct {
	repos *repository.Repositories
}

var _ api.IngredientServiceHandler = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService.
func NewIngredientService(repos *repository.Repositories) *IngredientService {
	return &IngredientService{repos: repos}
}

// ListIngredients returns the catalog in insertion order.
func (s *IngredientService) ListIngredients(ctx context.Context, req *connect.Request[api.ListIngredientsRequest]) (*connect.Response[api.ListIngredientsResponse], error) {
	slog.Info("ListIngredients request received")

	catalog, err := s.repos.Ingredients.LoadAll(ctx)
	if err != nil {
		slog.Error("ListIngredients failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListIngredientsResponse{Ingredients: catalog}), nil
}

// CreateIngredient appends a catalog entry. The unit defaults to kg.
func (s *IngredientService) CreateIngredient(ctx context.Context, req *connect.Request[api.CreateIngredientRequest]) (*connect.Response[api.CreateIngredientResponse], error) {
	slog.Info("CreateIngredient request received", "text", req.Msg.Text, "qty_metric", req.Msg.QtyMetric)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	metric := req.Msg.QtyMetric
	if metric == "" {
		metric = models.QtyMetricKg
	}

	ingredient, err := s.repos.Ingredients.Insert(ctx, models.Ingredient{
		Text:      strings.TrimSpace(req.Msg.Text),
		QtyMetric: metric,
	})
	if err != nil {
		slog.Error("CreateIngredient failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Ingredient created", "ingredient_id", ingredient.ID)

	return connect.NewResponse(&api.CreateIngredientResponse{Ingredient: ingredient}), nil
}

// DeleteIngredient removes a catalog entry.
func (s *IngredientService) DeleteIngredient(ctx context.Context, req *connect.Request[api.DeleteIngredientRequest]) (*connect.Response[api.DeleteIngredientResponse], error) {
	slog.Info("DeleteIngredient request received", "ingredient_id", req.Msg.ID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, toConnectError(err)
	}

	removed, err := s.repos.Ingredients.DeleteByID(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("DeleteIngredient failed", "ingredient_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	if !removed {
		return nil, toConnectError(fmt.Errorf("%w: ingredient %s", repository.ErrNotFound, req.Msg.ID))
	}

	return connect.NewResponse(&api.DeleteIngredientResponse{}), nil
}
