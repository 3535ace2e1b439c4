package pantry

import "errors"

// Domain-specific errors for the pantry package.
var (
	ErrEmptyProductName = errors.New("product name is empty")
	ErrProductNotFound  = errors.New("product not found")
)
