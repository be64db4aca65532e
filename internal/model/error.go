package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeItemUnavailable    = "ITEM_UNAVAILABLE"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeMenuItemNotFound   = "MENU_ITEM_NOT_FOUND"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeTableNotFound      = "TABLE_NOT_FOUND"
	ErrCodeNoActiveOrder      = "NO_ACTIVE_ORDER"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
	ErrItemUnavailable    = NewDomainError(ErrCodeItemUnavailable, "Menu item is currently unavailable")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be zero or greater")
	ErrMenuItemNotFound   = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrTableNotFound      = NewDomainError(ErrCodeTableNotFound, "Table not found")
	ErrNoActiveOrder      = NewDomainError(ErrCodeNoActiveOrder, "Table has no active order")
	ErrInvalidTransition  = NewDomainError(ErrCodeInvalidTransition, "Order status can only advance to the next preparation stage")
)
