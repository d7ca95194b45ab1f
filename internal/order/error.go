package order

import (
	"errors"
	"fmt"
	"strings"
)

// Error messages are surfaced verbatim in mutation responses.
var ErrNoProducts = errors.New("At least one product is required")

// CustomerNotFoundError reports an order referencing a customer id that does
// not exist.
type CustomerNotFoundError struct {
	ID uint
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("Customer with ID %d does not exist", e.ID)
}

// InvalidProductsError carries every unknown product id from the request, in
// the order they were given.
type InvalidProductsError struct {
	IDs []string
}

func (e *InvalidProductsError) Error() string {
	return "Invalid product IDs: " + strings.Join(e.IDs, ", ")
}
