package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Auth errors
	ErrMsgNotAuthorized      = "email is not authorized as admin"
	ErrMsgInvalidCredentials = "invalid email or password"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Inventory errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgNoSlotsProvided = "no recognized image slots provided"
	ErrMsgInvalidItemType = "invalid item type"

	// Daily bonus errors
	ErrMsgRewardNotFound = "daily bonus reward not found"
	ErrMsgDayTaken       = "a reward already exists for that day"
	ErrMsgDayOutOfRange  = "day number must be between 1 and 7"
	ErrMsgStyleRequired  = "token_style is required for token and board rewards"

	// Dare errors
	ErrMsgDareNotFound = "dare not found"
	ErrMsgInvalidDare  = "dare text and a valid category are required"

	// Tournament errors
	ErrMsgTournamentNotFound = "tournament not found"
	ErrMsgInvalidStatus      = "invalid tournament status"

	// Room errors
	ErrMsgRoomNotFound = "room not found"

	// Chat errors
	ErrMsgChatNotFound      = "chat not found"
	ErrMsgInvalidChatFilter = "invalid chat filter"
	ErrMsgInvalidChatStatus = "chat status must be open or closed"

	// Promotion errors
	ErrMsgPromotionNotFound = "promotion not found"
	ErrMsgInvalidPromotion  = "app name is required"

	// Gift errors
	ErrMsgInvalidGiftType = "invalid gift type"
	ErrMsgInvalidAmount   = "amount must be positive"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Auth errors
	ErrNotAuthorized      = errors.New(ErrMsgNotAuthorized)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Inventory errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrNoSlotsProvided = errors.New(ErrMsgNoSlotsProvided)
	ErrInvalidItemType = errors.New(ErrMsgInvalidItemType)

	// Daily bonus errors
	ErrRewardNotFound = errors.New(ErrMsgRewardNotFound)
	ErrDayTaken       = errors.New(ErrMsgDayTaken)
	ErrDayOutOfRange  = errors.New(ErrMsgDayOutOfRange)
	ErrStyleRequired  = errors.New(ErrMsgStyleRequired)

	// Dare errors
	ErrDareNotFound = errors.New(ErrMsgDareNotFound)
	ErrInvalidDare  = errors.New(ErrMsgInvalidDare)

	// Tournament errors
	ErrTournamentNotFound = errors.New(ErrMsgTournamentNotFound)
	ErrInvalidStatus      = errors.New(ErrMsgInvalidStatus)

	// Room errors
	ErrRoomNotFound = errors.New(ErrMsgRoomNotFound)

	// Chat errors
	ErrChatNotFound      = errors.New(ErrMsgChatNotFound)
	ErrInvalidChatFilter = errors.New(ErrMsgInvalidChatFilter)
	ErrInvalidChatStatus = errors.New(ErrMsgInvalidChatStatus)

	// Promotion errors
	ErrPromotionNotFound = errors.New(ErrMsgPromotionNotFound)
	ErrInvalidPromotion  = errors.New(ErrMsgInvalidPromotion)

	// Gift errors
	ErrInvalidGiftType = errors.New(ErrMsgInvalidGiftType)
	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
