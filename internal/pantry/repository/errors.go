package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list pantry items")
	ErrFailedToInsert = errors.New("failed to insert pantry item")
	ErrFailedToUpdate = errors.New("failed to update pantry item")
	ErrFailedToDelete = errors.New("failed to delete pantry item")
)
