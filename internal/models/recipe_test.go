package models

import "testing"

func TestNormalizeName(t *testing.T) {
	for in, want := range map[string]string{
		" Flour":       "flour",
		"flour":        "flour",
		"  OLIVE Oil ": "olive oil",
		"":             "",
	} {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRecipePutIngredient(t *testing.T) {
	recipe := Recipe{ID: "r1", Text: "Bread"}

	added := recipe.PutIngredient("  Flour ", "500", "i1")
	if added.Text != "flour" || added.ID != "i1" {
		t.Errorf("new line = %+v, want normalized text and id i1", added)
	}

	updated := recipe.PutIngredient("FLOUR", "600", "i2")
	if updated.ID != "i1" {
		t.Errorf("expected existing line i1 to be updated, got %s", updated.ID)
	}
	if len(recipe.IngredientList) != 1 {
		t.Fatalf("expected 1 line, got %d", len(recipe.IngredientList))
	}
	if recipe.IngredientList[0].Quantity != "600" {
		t.Errorf("quantity = %s, want 600", recipe.IngredientList[0].Quantity)
	}

	recipe.PutIngredient("salt", "10", "i3")
	if len(recipe.IngredientList) != 2 {
		t.Errorf("expected 2 lines, got %d", len(recipe.IngredientList))
	}
}

func TestRecipeEditIngredients(t *testing.T) {
	recipe := Recipe{
		ID: "r1",
		IngredientList: []RecipeIngredient{
			{ID: "a", Text: "egg", Quantity: "2"},
			{ID: "b", Text: "milk", Quantity: "1"},
			{ID: "c", Text: "flour", Quantity: "3"},
		},
	}
	original := recipe.IngredientList

	if !recipe.SetIngredientQuantity("b", "4") {
		t.Error("SetIngredientQuantity on existing line returned false")
	}
	if recipe.SetIngredientQuantity("zzz", "4") {
		t.Error("SetIngredientQuantity on missing line returned true")
	}

	if !recipe.RemoveIngredient("a") {
		t.Fatal("RemoveIngredient on existing line returned false")
	}
	if recipe.RemoveIngredient("a") {
		t.Error("RemoveIngredient twice returned true")
	}
	if len(recipe.IngredientList) != 2 || recipe.IngredientList[0].ID != "b" || recipe.IngredientList[1].ID != "c" {
		t.Errorf("unexpected lines after remove: %+v", recipe.IngredientList)
	}
	if original[0].ID != "a" {
		t.Error("RemoveIngredient modified the previous backing array")
	}
}

func TestDuplicateIngredientID(t *testing.T) {
	tests := []struct {
		name    string
		lines   []RecipeIngredient
		wantID  string
		wantDup bool
	}{
		{name: "no lines"},
		{name: "unique ids", lines: []RecipeIngredient{{ID: "a"}, {ID: "b"}}},
		{name: "empty ids are ignored", lines: []RecipeIngredient{{ID: ""}, {ID: ""}, {ID: "a"}}},
		{name: "repeated id", lines: []RecipeIngredient{{ID: "a"}, {ID: "b"}, {ID: "a"}}, wantID: "a", wantDup: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, dup := Recipe{IngredientList: tt.lines}.DuplicateIngredientID()
			if id != tt.wantID || dup != tt.wantDup {
				t.Errorf("DuplicateIngredientID() = (%q, %v), want (%q, %v)", id, dup, tt.wantID, tt.wantDup)
			}
		})
	}
}

func TestShoppingListRecipes(t *testing.T) {
	var list ShoppingList

	if !list.AddRecipe(RecipeRef{ID: "r1", ReqServing: "2"}) {
		t.Error("first AddRecipe returned false")
	}
	if list.AddRecipe(RecipeRef{ID: "r1", ReqServing: "5"}) {
		t.Error("duplicate AddRecipe returned true")
	}
	list.AddRecipe(RecipeRef{ID: "r2", ReqServing: "1"})

	if len(list.RecipeList) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(list.RecipeList))
	}
	if list.RecipeList[0].ReqServing != "2" {
		t.Errorf("duplicate add changed servings to %s", list.RecipeList[0].ReqServing)
	}

	if !list.SetRequestedServing("r2", "6") || list.RecipeList[1].ReqServing != "6" {
		t.Error("SetRequestedServing did not update r2")
	}
	if list.SetRequestedServing("missing", "6") {
		t.Error("SetRequestedServing on missing recipe returned true")
	}

	if !list.RemoveRecipe("r1") || list.HasRecipe("r1") {
		t.Error("RemoveRecipe did not remove r1")
	}
	if list.RemoveRecipe("r1") {
		t.Error("RemoveRecipe twice returned true")
	}
}

func TestMetricsByName(t *testing.T) {
	metrics := MetricsByName([]Ingredient{
		{ID: "1", Text: " Flour", QtyMetric: QtyMetricKg},
		{ID: "2", Text: "Egg", QtyMetric: QtyMetricUnit},
		{ID: "3", Text: "  ", QtyMetric: QtyMetricUnit},
	})
	if metrics["flour"] != QtyMetricKg || metrics["egg"] != QtyMetricUnit {
		t.Errorf("unexpected metrics: %v", metrics)
	}
	if len(metrics) != 2 {
		t.Errorf("expected blank names to be skipped, got %d entries", len(metrics))
	}
}
