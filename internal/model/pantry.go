package model

// Category is the closed set of storage categories a pantry item can belong to.
type Category string

const (
	CategoryDairy   Category = "lacteos"
	CategoryProduce Category = "fruta_verdura"
	CategoryPantry  Category = "despensa"
	CategoryDrinks  Category = "bebidas"
)

// PantryItem is a single product owned by the external pantry store.
// Quantity is never negative; an item with Quantity == 0 is logically absent
// but may still exist in the store until explicitly deleted.
type PantryItem struct {
	ID       string   // opaque, store-assigned
	Name     string   // free-text product name
	Quantity int      // non-negative count
	Category Category // empty when unclassified
}
