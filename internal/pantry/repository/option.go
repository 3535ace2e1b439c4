package repository

import "pantry-assistant/internal/model"

// CreateItemOptions holds parameters for inserting a new pantry item.
type CreateItemOptions struct {
	UserID   string
	Name     string
	Quantity int
	Category model.Category // empty when the classifier found no match
}
