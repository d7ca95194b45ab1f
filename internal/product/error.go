package product

import "errors"

// Error messages are surfaced verbatim in mutation responses.
var (
	ErrInvalidPrice         = errors.New("Price must be greater than 0")
	ErrInvalidStock         = errors.New("Stock cannot be negative")
	ErrInvalidRestockAmount = errors.New("Restock amount must be greater than 0")
	ErrNameExists           = errors.New("A product with this name already exists")
	ErrNameRequired         = errors.New("Name is required")
)
