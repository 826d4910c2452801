package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/storage"
)

func createRecipe(t *testing.T, c *testClients, text string, serving models.Amount) models.Recipe {
	t.Helper()
	resp, err := c.recipes.CreateRecipe(context.Background(), connect.NewRequest(&api.CreateRecipeRequest{
		Text:    text,
		Serving: serving,
	}))
	if err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	return resp.Msg.Recipe
}

func putIngredient(t *testing.T, c *testClients, recipeID, text string, qty models.Amount) models.Recipe {
	t.Helper()
	resp, err := c.recipes.PutIngredient(context.Background(), connect.NewRequest(&api.PutIngredientRequest{
		RecipeID: recipeID,
		Text:     text,
		Quantity: qty,
	}))
	if err != nil {
		t.Fatalf("PutIngredient failed: %v", err)
	}
	return resp.Msg.Recipe
}

func TestCreateRecipe(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()

	first := createRecipe(t, c, "  Pancakes ", "4")
	second := createRecipe(t, c, "Bread", "")

	if first.ID == "" || first.ID == second.ID {
		t.Errorf("expected unique non-empty ids, got %q and %q", first.ID, second.ID)
	}
	if first.Text != "Pancakes" {
		t.Errorf("text: expected 'Pancakes', got '%s'", first.Text)
	}
	if first.Serving.FloatOr(0) != 4 {
		t.Errorf("serving: expected 4, got %s", first.Serving)
	}

	resp, err := c.recipes.ListRecipes(context.Background(), connect.NewRequest(&api.ListRecipesRequest{}))
	if err != nil {
		t.Fatalf("ListRecipes failed: %v", err)
	}
	if len(resp.Msg.Recipes) != 2 || resp.Msg.Recipes[0].ID != second.ID {
		t.Errorf("expected newest recipe first, got %+v", resp.Msg.Recipes)
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()

	tests := []struct {
		name string
		req  *api.CreateRecipeRequest
	}{
		{name: "blank name", req: &api.CreateRecipeRequest{Text: "  "}},
		{name: "zero serving", req: &api.CreateRecipeRequest{Text: "Soup", Serving: "0"}},
		{name: "non-numeric serving", req: &api.CreateRecipeRequest{Text: "Soup", Serving: "four"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.recipes.CreateRecipe(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}

	resp, _ := c.recipes.ListRecipes(context.Background(), connect.NewRequest(&api.ListRecipesRequest{}))
	if len(resp.Msg.Recipes) != 0 {
		t.Errorf("rejected input should not be stored, got %+v", resp.Msg.Recipes)
	}
}

func TestPutIngredient(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()

	r := createRecipe(t, c, "Pancakes", "4")
	putIngredient(t, c, r.ID, " Flour", "200")
	putIngredient(t, c, r.ID, "egg", "2")
	updated := putIngredient(t, c, r.ID, "FLOUR ", "250")

	if len(updated.IngredientList) != 2 {
		t.Fatalf("expected 2 ingredients, got %+v", updated.IngredientList)
	}
	flour := updated.IngredientList[0]
	if flour.Text != "flour" || flour.Quantity.FloatOr(0) != 250 {
		t.Errorf("expected flour updated in place to 250, got %+v", flour)
	}

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := c.recipes.PutIngredient(context.Background(), connect.NewRequest(&api.PutIngredientRequest{
			RecipeID: r.ID, Text: "milk", Quantity: "-1",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := c.recipes.PutIngredient(context.Background(), connect.NewRequest(&api.PutIngredientRequest{
			RecipeID: "missing", Text: "milk", Quantity: "1",
		}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestEditIngredients(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	r := createRecipe(t, c, "Omelette", "1")
	r = putIngredient(t, c, r.ID, "egg", "2")
	r = putIngredient(t, c, r.ID, "cheese", "0.05")
	eggID := r.IngredientList[0].ID

	qtyResp, err := c.recipes.SetIngredientQuantity(ctx, connect.NewRequest(&api.SetIngredientQuantityRequest{
		RecipeID: r.ID, IngredientID: eggID, Quantity: "3",
	}))
	if err != nil {
		t.Fatalf("SetIngredientQuantity failed: %v", err)
	}
	if qtyResp.Msg.Recipe.IngredientList[0].Quantity.FloatOr(0) != 3 {
		t.Errorf("expected egg quantity 3, got %+v", qtyResp.Msg.Recipe.IngredientList[0])
	}

	_, err = c.recipes.SetIngredientQuantity(ctx, connect.NewRequest(&api.SetIngredientQuantityRequest{
		RecipeID: r.ID, IngredientID: "missing", Quantity: "3",
	}))
	assertCode(t, err, connect.CodeNotFound)

	removeResp, err := c.recipes.RemoveIngredient(ctx, connect.NewRequest(&api.RemoveIngredientRequest{
		RecipeID: r.ID, IngredientID: eggID,
	}))
	if err != nil {
		t.Fatalf("RemoveIngredient failed: %v", err)
	}
	if len(removeResp.Msg.Recipe.IngredientList) != 1 || removeResp.Msg.Recipe.IngredientList[0].Text != "cheese" {
		t.Errorf("unexpected ingredients after remove: %+v", removeResp.Msg.Recipe.IngredientList)
	}

	_, err = c.recipes.RemoveIngredient(ctx, connect.NewRequest(&api.RemoveIngredientRequest{
		RecipeID: r.ID, IngredientID: eggID,
	}))
	assertCode(t, err, connect.CodeNotFound)

	servingResp, err := c.recipes.SetServing(ctx, connect.NewRequest(&api.SetServingRequest{RecipeID: r.ID, Serving: "2"}))
	if err != nil {
		t.Fatalf("SetServing failed: %v", err)
	}
	if servingResp.Msg.Recipe.Serving.FloatOr(0) != 2 {
		t.Errorf("expected serving 2, got %s", servingResp.Msg.Recipe.Serving)
	}

	_, err = c.recipes.SetServing(ctx, connect.NewRequest(&api.SetServingRequest{RecipeID: r.ID, Serving: "0"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestGetRecipe(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	r := createRecipe(t, c, "Bread", "1")
	putIngredient(t, c, r.ID, "Flour", "0.5")
	putIngredient(t, c, r.ID, "yeast", "7")
	if _, err := c.ingredients.CreateIngredient(ctx, connect.NewRequest(&api.CreateIngredientRequest{Text: "flour"})); err != nil {
		t.Fatalf("CreateIngredient failed: %v", err)
	}

	resp, err := c.recipes.GetRecipe(ctx, connect.NewRequest(&api.GetRecipeRequest{ID: r.ID}))
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if len(resp.Msg.Recipe.IngredientList) != 2 {
		t.Errorf("expected 2 ingredients, got %d", len(resp.Msg.Recipe.IngredientList))
	}
	if resp.Msg.QtyMetrics["flour"] != models.QtyMetricKg {
		t.Errorf("expected kg label for flour, got %+v", resp.Msg.QtyMetrics)
	}
	if _, ok := resp.Msg.QtyMetrics["yeast"]; ok {
		t.Error("yeast is not in the catalog and should have no label")
	}

	_, err = c.recipes.GetRecipe(ctx, connect.NewRequest(&api.GetRecipeRequest{ID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestUpdateRecipe(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	r := createRecipe(t, c, "Soup", "2")
	r.Text = "Leek soup"
	r.IngredientList = []models.RecipeIngredient{{Text: "leek", Quantity: "3"}}

	resp, err := c.recipes.UpdateRecipe(ctx, connect.NewRequest(&api.UpdateRecipeRequest{Recipe: r}))
	if err != nil {
		t.Fatalf("UpdateRecipe failed: %v", err)
	}
	if resp.Msg.Recipe.IngredientList[0].ID == "" {
		t.Error("expected an id to be assigned to the new ingredient")
	}

	t.Run("unknown id changes nothing", func(t *testing.T) {
		before, _ := c.store.Get(ctx, storage.KeyRecipes)

		_, err := c.recipes.UpdateRecipe(ctx, connect.NewRequest(&api.UpdateRecipeRequest{
			Recipe: models.Recipe{ID: "missing", Text: "Ghost"},
		}))
		assertCode(t, err, connect.CodeNotFound)

		after, _ := c.store.Get(ctx, storage.KeyRecipes)
		if string(before) != string(after) {
			t.Errorf("document changed:\nbefore %s\nafter  %s", before, after)
		}
	})

	t.Run("invalid ingredient", func(t *testing.T) {
		bad := r
		bad.IngredientList = []models.RecipeIngredient{{Text: "", Quantity: "1"}}
		_, err := c.recipes.UpdateRecipe(ctx, connect.NewRequest(&api.UpdateRecipeRequest{Recipe: bad}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := c.recipes.UpdateRecipe(ctx, connect.NewRequest(&api.UpdateRecipeRequest{
			Recipe: models.Recipe{Text: "No id"},
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("duplicate ingredient ids", func(t *testing.T) {
		before, _ := c.store.Get(ctx, storage.KeyRecipes)

		dup := r
		dup.IngredientList = []models.RecipeIngredient{
			{ID: "x", Text: "leek", Quantity: "1"},
			{ID: "x", Text: "potato", Quantity: "2"},
		}
		_, err := c.recipes.UpdateRecipe(ctx, connect.NewRequest(&api.UpdateRecipeRequest{Recipe: dup}))
		assertCode(t, err, connect.CodeInvalidArgument)

		after, _ := c.store.Get(ctx, storage.KeyRecipes)
		if string(before) != string(after) {
			t.Errorf("document changed:\nbefore %s\nafter  %s", before, after)
		}
	})
}

func TestDeleteRecipeRemovesShoppingListReferences(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	doomed := createRecipe(t, c, "Lasagne", "4")
	kept := createRecipe(t, c, "Salad", "2")

	listIDs := make([]string, 0, 3)
	for _, name := range []string{"Monday", "Tuesday", "Wednesday"} {
		l := createShoppingList(t, c, name)
		listIDs = append(listIDs, l.ID)
		addRecipe(t, c, l.ID, kept.ID, "2")
	}
	addRecipe(t, c, listIDs[0], doomed.ID, "2")
	addRecipe(t, c, listIDs[2], doomed.ID, "8")

	resp, err := c.recipes.DeleteRecipe(ctx, connect.NewRequest(&api.DeleteRecipeRequest{ID: doomed.ID}))
	if err != nil {
		t.Fatalf("DeleteRecipe failed: %v", err)
	}
	if resp.Msg.ShoppingListsUpdated != 2 {
		t.Errorf("expected 2 shopping lists updated, got %d", resp.Msg.ShoppingListsUpdated)
	}

	lists, err := c.shoppingLists.ListShoppingLists(ctx, connect.NewRequest(&api.ListShoppingListsRequest{}))
	if err != nil {
		t.Fatalf("ListShoppingLists failed: %v", err)
	}
	for _, l := range lists.Msg.ShoppingLists {
		if l.HasRecipe(doomed.ID) {
			t.Errorf("list %s still references the deleted recipe", l.Text)
		}
		if !l.HasRecipe(kept.ID) {
			t.Errorf("list %s lost an unrelated recipe", l.Text)
		}
	}

	_, err = c.recipes.DeleteRecipe(ctx, connect.NewRequest(&api.DeleteRecipeRequest{ID: doomed.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestSuggestIngredients(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	pancakes := createRecipe(t, c, "Pancakes", "4")
	putIngredient(t, c, pancakes.ID, "Flour", "200")
	putIngredient(t, c, pancakes.ID, "egg", "2")
	bread := createRecipe(t, c, "Bread", "1")
	putIngredient(t, c, bread.ID, "flour", "500")
	c.ingredients.CreateIngredient(ctx, connect.NewRequest(&api.CreateIngredientRequest{Text: "Cauliflower", QtyMetric: models.QtyMetricUnit}))
	c.ingredients.CreateIngredient(ctx, connect.NewRequest(&api.CreateIngredientRequest{Text: "flour"}))

	resp, err := c.recipes.SuggestIngredients(ctx, connect.NewRequest(&api.SuggestIngredientsRequest{Query: "FL"}))
	if err != nil {
		t.Fatalf("SuggestIngredients failed: %v", err)
	}
	want := []api.IngredientSuggestion{
		{Text: "flour", QtyMetric: models.QtyMetricKg},
		{Text: "cauliflower", QtyMetric: models.QtyMetricUnit},
	}
	if len(resp.Msg.Suggestions) != len(want) {
		t.Fatalf("expected %d suggestions, got %+v", len(want), resp.Msg.Suggestions)
	}
	for i := range want {
		if resp.Msg.Suggestions[i] != want[i] {
			t.Errorf("suggestion %d: expected %+v, got %+v", i, want[i], resp.Msg.Suggestions[i])
		}
	}

	short, err := c.recipes.SuggestIngredients(ctx, connect.NewRequest(&api.SuggestIngredientsRequest{Query: "f"}))
	if err != nil {
		t.Fatalf("SuggestIngredients failed: %v", err)
	}
	if len(short.Msg.Suggestions) != 0 {
		t.Errorf("expected no suggestions for a one-character query, got %+v", short.Msg.Suggestions)
	}
}

func TestMalformedDocumentIsReported(t *testing.T) {
	c, cleanup := setupTestServer(t, "")
	defer cleanup()
	ctx := context.Background()

	if err := c.store.Set(ctx, storage.KeyRecipes, []byte("{not json")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	_, err := c.recipes.ListRecipes(ctx, connect.NewRequest(&api.ListRecipesRequest{}))
	assertCode(t, err, connect.CodeDataLoss)

	_, err = c.recipes.CreateRecipe(ctx, connect.NewRequest(&api.CreateRecipeRequest{Text: "Soup"}))
	assertCode(t, err, connect.CodeDataLoss)

	payload, _ := c.store.Get(ctx, storage.KeyRecipes)
	if string(payload) != "{not json" {
		t.Errorf("malformed document should be left untouched, got %s", payload)
	}
}
