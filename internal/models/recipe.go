package models

import "strings"

// Recipe represents a dish with its ingredient quantities for a base serving size.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format for new records,
	// millisecond timestamps for records created by older clients).
	// Immutable once assigned.
	ID string `json:"id"`

	// Text is the display name of the recipe (e.g., "Pancakes").
	Text string `json:"text" validate:"notblank"`

	// Serving is the number of servings the ingredient quantities are written for.
	// Missing or invalid values are treated as 1 by the aggregator.
	Serving Amount `json:"serving,omitempty" validate:"omitempty,amount=positive"`

	// IngredientList holds the ingredient lines in display order.
	// Order carries no meaning beyond display.
	IngredientList []RecipeIngredient `json:"ingredientList,omitempty" validate:"dive"`
}

// RecipeIngredient is a single ingredient line inside a recipe.
type RecipeIngredient struct {
	// Text is the ingredient name. It is the matching key across recipes after
	// normalization (see NormalizeName). Must not be empty.
	Text string `json:"text" validate:"notblank"`

	// Quantity is the amount needed for the recipe's base serving size.
	// Lines without a valid quantity are listed but never counted in totals.
	Quantity Amount `json:"quantity" validate:"omitempty,amount=nonnegative"`

	// ID is unique within the recipe.
	ID string `json:"id"`
}

// GetID returns the recipe ID.
func (r Recipe) GetID() string { return r.ID }

// WithID returns a copy of the recipe carrying id.
func (r Recipe) WithID(id string) Recipe {
	r.ID = id
	return r
}

// NormalizeName returns the matching key for an ingredient or recipe name:
// surrounding whitespace removed, lower case.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PutIngredient sets the quantity of the ingredient whose normalized name equals text,
// or appends a new line with the given id when the recipe has no such ingredient.
// New lines store the normalized name. It returns the resulting line.
func (r *Recipe) PutIngredient(text string, quantity Amount, id string) RecipeIngredient {
	name := NormalizeName(text)
	for i := range r.IngredientList {
		if NormalizeName(r.IngredientList[i].Text) == name {
			r.IngredientList[i].Quantity = quantity
			return r.IngredientList[i]
		}
	}
	line := RecipeIngredient{Text: name, Quantity: quantity, ID: id}
	r.IngredientList = append(r.IngredientList, line)
	return line
}

// SetIngredientQuantity updates the quantity of the line with the given ID.
// It reports whether the line exists.
func (r *Recipe) SetIngredientQuantity(id string, quantity Amount) bool {
	for i := range r.IngredientList {
		if r.IngredientList[i].ID == id {
			r.IngredientList[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveIngredient deletes the line with the given ID and reports whether it existed.
func (r *Recipe) RemoveIngredient(id string) bool {
	for i := range r.IngredientList {
		if r.IngredientList[i].ID == id {
			list := make([]RecipeIngredient, 0, len(r.IngredientList)-1)
			list = append(list, r.IngredientList[:i]...)
			r.IngredientList = append(list, r.IngredientList[i+1:]...)
			return true
		}
	}
	return false
}

// DuplicateIngredientID returns the first non-empty line ID that appears more than once.
func (r Recipe) DuplicateIngredientID() (string, bool) {
	seen := make(map[string]struct{}, len(r.IngredientList))
	for _, line := range r.IngredientList {
		if line.ID == "" {
			continue
		}
		if _, dup := seen[line.ID]; dup {
			return line.ID, true
		}
		seen[line.ID] = struct{}{}
	}
	return "", false
}
