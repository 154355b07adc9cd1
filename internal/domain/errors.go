package domain

// Sentinel errors shared across the engine and adapters. The interactive
// loop matches on these to decide between re-prompting a field and
// aborting the current operation.
var (
	ErrNotFound          = domainError("not found")
	ErrNoOrders          = domainError("no pending orders")
	ErrInvalidQuantity   = domainError("invalid quantity")
	ErrInvalidPrice      = domainError("invalid price")
	ErrInsufficientStock = domainError("insufficient stock")
	ErrInsufficientFunds = domainError("insufficient funds")
	ErrInvalidShopName   = domainError("shop name is not available")
	ErrInvalidPassword   = domainError("password must be alphanumeric and between 8 to 16 characters")
	ErrUsernameTaken     = domainError("username already exists")
	ErrIncorrectPassword = domainError("incorrect password")
	ErrValidation        = domainError("invalid data")
)

type domainError string

func (e domainError) Error() string { return string(e) }
