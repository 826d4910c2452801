package repository

import (
	"github.com/mmynk/recipelist/internal/models"
	"github.com/mmynk/recipelist/internal/storage"
)

// Repositories groups the three collections of the app.
type Repositories struct {
	Recipes       *Collection[models.Recipe]
	ShoppingLists *Collection[models.ShoppingList]
	Ingredients   *Collection[models.Ingredient]
}

// New binds the collections to store. New recipes and shopping lists are listed
// first; catalog entries are appended.
func New(store storage.Store, opts ...Option) *Repositories {
	front := append([]Option{WithPrepend()}, opts...)
	return &Repositories{
		Recipes:       NewCollection[models.Recipe](store, storage.KeyRecipes, front...),
		ShoppingLists: NewCollection[models.ShoppingList](store, storage.KeyShoppingLists, front...),
		Ingredients:   NewCollection[models.Ingredient](store, storage.KeyIngredients, opts...),
	}
}

// Close stops every collection's write queue.
func (r *Repositories) Close() {
	r.Recipes.Close()
	r.ShoppingLists.Close()
	r.Ingredients.Close()
}
