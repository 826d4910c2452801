package models

// Record is implemented by every model stored as an element of a collection document.
// T is the implementing type itself.
type Record[T any] interface {
	// GetID returns the record's unique ID.
	GetID() string

	// WithID returns a copy of the record carrying id.
	WithID(id string) T
}

var (
	_ Record[Recipe]       = Recipe{}
	_ Record[ShoppingList] = ShoppingList{}
	_ Record[Ingredient]   = Ingredient{}
)
