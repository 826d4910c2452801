// Package models defines the core domain models for recipelist.
//
// # Models
//
//   - Recipe: a named dish with a base serving size and ordered ingredient quantities
//   - RecipeIngredient: one ingredient line inside a recipe
//   - ShoppingList: a named set of recipe references with requested serving counts
//   - RecipeRef: a pointer from a shopping list to a recipe, by ID
//   - Ingredient: an entry of the ingredient catalog, carrying a quantity metric label
//
// # Design Principles
//
// 1. **Documents, not rows**: each collection is persisted as one JSON document, so the
// JSON field names below are the storage format and must stay stable.
// 2. **IDs over pointers**: relations are string IDs resolved at read time. A shopping list
// never embeds a recipe copy, so it cannot drift from the authoritative record.
// 3. **Names are keys**: ingredients match across recipes and the catalog by normalized
// text (see NormalizeName), not by ID.
// 4. **Lenient numbers**: serving sizes and quantities were historically saved as either
// JSON numbers or strings typed into a form. Amount accepts both.
package models
