package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when the referenced product id does
	// not exist in the current list.
	ErrProductNotFound = errors.New("product not found")

	// ErrSaleNotFound is returned when the referenced sale id does not
	// exist within the product's history.
	ErrSaleNotFound = errors.New("sale record not found")
)

// ValidationError marks a request that is malformed before it touches
// storage (missing name, non-positive quantity, unknown platform).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError is returned by RecordSale when the requested
// quantity exceeds current stock. It is distinct from validation errors
// so the caller can show a specific message.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock available: requested %d, have %d", e.Requested, e.Available)
}
