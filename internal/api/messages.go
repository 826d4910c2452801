package api

import "github.com/mmynk/recipelist/internal/models"

// Recipes

type ListRecipesRequest struct{}

type ListRecipesResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

type GetRecipeRequest struct {
	ID string `json:"id" validate:"notblank"`
}

type GetRecipeResponse struct {
	Recipe models.Recipe `json:"recipe"`
	// QtyMetrics maps normalized ingredient names to the unit label from the ingredient catalog.
	QtyMetrics map[string]models.QtyMetric `json:"qtyMetrics"`
}

type CreateRecipeRequest struct {
	Text    string        `json:"text" validate:"notblank,max=200"`
	Serving models.Amount `json:"serving" validate:"omitempty,amount=positive"`
}

type CreateRecipeResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type UpdateRecipeRequest struct {
	Recipe models.Recipe `json:"recipe"`
}

type UpdateRecipeResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type DeleteRecipeRequest struct {
	ID string `json:"id" validate:"notblank"`
}

type DeleteRecipeResponse struct {
	// ShoppingListsUpdated counts the shopping lists the recipe was removed from.
	ShoppingListsUpdated int `json:"shoppingListsUpdated"`
}

type SetServingRequest struct {
	RecipeID string        `json:"recipeId" validate:"notblank"`
	Serving  models.Amount `json:"serving" validate:"amount=positive"`
}

type SetServingResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type PutIngredientRequest struct {
	RecipeID string        `json:"recipeId" validate:"notblank"`
	Text     string        `json:"text" validate:"notblank,max=100"`
	Quantity models.Amount `json:"quantity" validate:"amount=nonnegative"`
}

type PutIngredientResponse struct {
	Recipe     models.Recipe           `json:"recipe"`
	Ingredient models.RecipeIngredient `json:"ingredient"`
}

type SetIngredientQuantityRequest struct {
	RecipeID     string        `json:"recipeId" validate:"notblank"`
	IngredientID string        `json:"ingredientId" validate:"notblank"`
	Quantity     models.Amount `json:"quantity" validate:"amount=nonnegative"`
}

type SetIngredientQuantityResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type RemoveIngredientRequest struct {
	RecipeID     string `json:"recipeId" validate:"notblank"`
	IngredientID string `json:"ingredientId" validate:"notblank"`
}

type RemoveIngredientResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type SuggestIngredientsRequest struct {
	Query string `json:"query"`
}

type IngredientSuggestion struct {
	Text      string           `json:"text"`
	QtyMetric models.QtyMetric `json:"qtyMetric,omitempty"`
}

type SuggestIngredientsResponse struct {
	Suggestions []IngredientSuggestion `json:"suggestions"`
}

// Shopping lists

type ListShoppingListsRequest struct{}

type ListShoppingListsResponse struct {
	ShoppingLists []models.ShoppingList `json:"shoppingLists"`
}

type GetShoppingListRequest struct {
	ID string `json:"id" validate:"notblank"`
}

type GetShoppingListResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
	// Recipes holds the referenced recipes that still exist, in list order.
	Recipes []models.Recipe `json:"recipes"`
	// MissingRecipeIDs lists references whose recipe has been deleted.
	MissingRecipeIDs []string `json:"missingRecipeIds"`
}

type CreateShoppingListRequest struct {
	Text string `json:"text" validate:"notblank,max=200"`
}

type CreateShoppingListResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
}

type DeleteShoppingListRequest struct {
	ID string `json:"id" validate:"notblank"`
}

type DeleteShoppingListResponse struct{}

type AddRecipeRequest struct {
	ShoppingListID string        `json:"shoppingListId" validate:"notblank"`
	RecipeID       string        `json:"recipeId" validate:"notblank"`
	ReqServing     models.Amount `json:"reqServing" validate:"omitempty,amount=positive"`
}

type AddRecipeResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
}

type SetRequestedServingRequest struct {
	ShoppingListID string        `json:"shoppingListId" validate:"notblank"`
	RecipeID       string        `json:"recipeId" validate:"notblank"`
	ReqServing     models.Amount `json:"reqServing" validate:"amount=positive"`
}

type SetRequestedServingResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
}

type RemoveRecipeRequest struct {
	ShoppingListID string `json:"shoppingListId" validate:"notblank"`
	RecipeID       string `json:"recipeId" validate:"notblank"`
}

type RemoveRecipeResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
}

type SuggestRecipesRequest struct {
	Query string `json:"query"`
}

type SuggestRecipesResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

type GenerateIngredientListRequest struct {
	ShoppingListID string `json:"shoppingListId" validate:"notblank"`
}

// RecipeContribution is one recipe's share of an IngredientTotal.
type RecipeContribution struct {
	RecipeID           string  `json:"recipeId"`
	RecipeText         string  `json:"recipeText"`
	ServingsRequired   float64 `json:"servingsRequired"`
	DefaultServingSize float64 `json:"defaultServingSize"`
	// Ratio is null when requested servings / base serving overflows.
	Ratio *float64 `json:"ratio"`
	// Quantity is null when the recipe's quantity for this ingredient is not a number.
	Quantity *float64 `json:"quantity"`
}

type IngredientTotal struct {
	Name          string               `json:"name"`
	TotalQty      float64              `json:"totalQty"`
	QtyMetric     models.QtyMetric     `json:"qtyMetric,omitempty"`
	Contributions []RecipeContribution `json:"contributions"`
}

type GenerateIngredientListResponse struct {
	ShoppingList models.ShoppingList `json:"shoppingList"`
	// Ingredients are sorted by name.
	Ingredients []IngredientTotal `json:"ingredients"`
	// ClipboardText is one "<name> - <total>" line per ingredient.
	ClipboardText string `json:"clipboardText"`
}

// Ingredient catalog

type ListIngredientsRequest struct{}

type ListIngredientsResponse struct {
	Ingredients []models.Ingredient `json:"ingredients"`
}

type CreateIngredientRequest struct {
	Text      string           `json:"text" validate:"notblank,max=100"`
	QtyMetric models.QtyMetric `json:"qtyMetric" validate:"omitempty,oneof=kg unit"`
}

type CreateIngredientResponse struct {
	Ingredient models.Ingredient `json:"ingredient"`
}

type DeleteIngredientRequest struct {
	ID string `json:"id" validate:"notblank"`
}

type DeleteIngredientResponse struct{}

// Auth

type UnlockRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
