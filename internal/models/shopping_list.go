package models

// ShoppingList is a named set of recipes to shop for, each at a requested serving count.
//
// It stores references only. The ingredient totals are computed on demand from the
// current recipe records, so editing a recipe is reflected in every list that uses it.
type ShoppingList struct {
	// ID is the unique identifier for the shopping list.
	ID string `json:"id"`

	// Text is the display name of the shopping list (e.g., "Weekend").
	Text string `json:"text"`

	// RecipeList holds the referenced recipes in display order.
	// A recipe ID appears at most once.
	RecipeList []RecipeRef `json:"recipeList,omitempty"`
}

// RecipeRef points from a shopping list to a recipe.
type RecipeRef struct {
	// ID is the referenced recipe's ID, not an identity of its own.
	ID string `json:"id"`

	// ReqServing is how many servings of the recipe the list needs.
	// Invalid values are treated as 1 by the aggregator.
	ReqServing Amount `json:"reqServing"`
}

// GetID returns the shopping list ID.
func (l ShoppingList) GetID() string { return l.ID }

// WithID returns a copy of the shopping list carrying id.
func (l ShoppingList) WithID(id string) ShoppingList {
	l.ID = id
	return l
}

// HasRecipe reports whether the list references the recipe.
func (l ShoppingList) HasRecipe(recipeID string) bool {
	for _, ref := range l.RecipeList {
		if ref.ID == recipeID {
			return true
		}
	}
	return false
}

// AddRecipe appends ref unless the recipe is already on the list.
// It reports whether the reference was added.
func (l *ShoppingList) AddRecipe(ref RecipeRef) bool {
	if l.HasRecipe(ref.ID) {
		return false
	}
	l.RecipeList = append(l.RecipeList, ref)
	return true
}

// SetRequestedServing updates the requested servings of a referenced recipe.
// It reports whether the recipe is on the list.
func (l *ShoppingList) SetRequestedServing(recipeID string, servings Amount) bool {
	found := false
	for i := range l.RecipeList {
		if l.RecipeList[i].ID == recipeID {
			l.RecipeList[i].ReqServing = servings
			found = true
		}
	}
	return found
}

// RemoveRecipe drops every reference to the recipe and reports whether any existed.
func (l *ShoppingList) RemoveRecipe(recipeID string) bool {
	kept := make([]RecipeRef, 0, len(l.RecipeList))
	for _, ref := range l.RecipeList {
		if ref.ID != recipeID {
			kept = append(kept, ref)
		}
	}
	removed := len(kept) != len(l.RecipeList)
	l.RecipeList = kept
	return removed
}
