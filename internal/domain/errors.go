package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgInvalidUserID = "invalid user id"

	// Item errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgInvalidCategory  = "invalid item category"
	ErrMsgItemNotUsable    = "item has no usable effect"
	ErrMsgItemNotBuyable   = "item is not buyable"
	ErrMsgDuplicateItemID  = "duplicate item id"
	ErrMsgCatalogEmpty     = "item catalog is empty"
	ErrMsgInvalidItemField = "invalid item field"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Chip / economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgCurrencyCredit    = "currency credit failed"

	// Casino errors
	ErrMsgInvalidGame      = "invalid game"
	ErrMsgInvalidBetOption = "invalid bet option"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrInvalidUserID = errors.New(ErrMsgInvalidUserID)

	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)
	ErrItemNotUsable   = errors.New(ErrMsgItemNotUsable)
	ErrItemNotBuyable  = errors.New(ErrMsgItemNotBuyable)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Chip / economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrCurrencyCredit    = errors.New(ErrMsgCurrencyCredit)

	// Casino errors
	ErrInvalidGame      = errors.New(ErrMsgInvalidGame)
	ErrInvalidBetOption = errors.New(ErrMsgInvalidBetOption)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
