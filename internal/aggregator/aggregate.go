package aggregator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mmynk/recipelist/internal/models"
)

// Contribution is one recipe's share of an ingredient total
type Contribution struct {
	RecipeID           string
	ServingsRequired   float64
	DefaultServingSize float64
	// Ratio is NaN or infinite when the division overflows; such a recipe adds nothing to totals.
	Ratio float64
	// Quantity is ratio * ingredient quantity. NaN when the recipe's quantity is not a number.
	// Contributions that are not finite are never added to a total.
	Quantity float64
	Recipe   models.Recipe
}

// Entry is the aggregated requirement for one normalized ingredient name
type Entry struct {
	Name          string
	TotalQty      float64
	Contributions map[string]Contribution
}

// Aggregate computes the total quantity of every ingredient needed for a shopping list.
// Each recipe's quantities are scaled by requested servings / base serving size:
// ratio = servingsRequired / defaultServingSize
// Ingredients are matched across recipes by normalized name.
// References to recipes missing from recipesByID are skipped.
func Aggregate(list models.ShoppingList, recipesByID map[string]models.Recipe) map[string]*Entry {
	entries := make(map[string]*Entry)

	for _, ref := range list.RecipeList {
		recipe, ok := recipesByID[ref.ID]
		if !ok {
			continue
		}

		servingsRequired := ref.ReqServing.FloatOr(1)
		defaultServingSize := recipe.Serving.FloatOr(1)
		// A zero or negative base serving would make the ratio meaningless
		if defaultServingSize <= 0 {
			defaultServingSize = 1
		}
		ratio := servingsRequired / defaultServingSize

		for _, ing := range recipe.IngredientList {
			name := models.NormalizeName(ing.Text)
			if name == "" {
				continue
			}

			entry, exists := entries[name]
			if !exists {
				entry = &Entry{Name: name, Contributions: make(map[string]Contribution)}
				entries[name] = entry
			}

			qty := math.NaN()
			if q, ok := ing.Quantity.Float(); ok && valid(ratio) {
				qty = ratio * q
			}
			// A running total that would overflow keeps its last finite value
			if sum := entry.TotalQty + qty; valid(sum) {
				entry.TotalQty = sum
			}

			// The same recipe may list one ingredient twice under different spellings
			if prev, seen := entry.Contributions[recipe.ID]; seen {
				qty = addValid(prev.Quantity, qty)
			}
			entry.Contributions[recipe.ID] = Contribution{
				RecipeID:           recipe.ID,
				ServingsRequired:   servingsRequired,
				DefaultServingSize: defaultServingSize,
				Ratio:              ratio,
				Quantity:           qty,
				Recipe:             recipe,
			}
		}
	}

	return entries
}

func valid(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// addValid sums a and b, ignoring whichever is not a finite number.
// A sum that overflows leaves a unchanged.
func addValid(a, b float64) float64 {
	switch {
	case !valid(a):
		return b
	case !valid(b):
		return a
	}
	if sum := a + b; valid(sum) {
		return sum
	}
	return a
}

// Sorted returns the entries ordered by name
func Sorted(entries map[string]*Entry) []*Entry {
	sorted := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// ClipboardText renders entries as "<name> - <total>" lines in name order
func ClipboardText(entries map[string]*Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range Sorted(entries) {
		lines = append(lines, fmt.Sprintf("%s - %.2f", e.Name, e.TotalQty))
	}
	return strings.Join(lines, "\n")
}
