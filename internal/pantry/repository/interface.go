package repository

import (
	"context"

	"pantry-assistant/internal/model"
)

// Repository is the composed interface for the pantry data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for pantry items.
// The store guarantees atomicity of single-item updates; this layer never
// caches across turns.
type ItemRepository interface {
	ListItems(ctx context.Context, userID string) ([]model.PantryItem, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.PantryItem, error)
	SetQuantity(ctx context.Context, itemID string, quantity int) (model.PantryItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}
