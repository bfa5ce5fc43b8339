package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIDParam    = "Invalid id parameter"

	// Auth error messages
	ErrMsgEmailPasswordRequired = "Email and password are required"
	ErrMsgMissingBearerToken    = "Missing or invalid Authorization header"

	// Multipart error messages
	ErrMsgInvalidMultipart = "Invalid multipart form"
	ErrMsgInvalidPrice     = "Invalid item_price value"
	ErrMsgInvalidDayNumber = "Invalid day_number value"
)

// Success messages for API responses.
const (
	MsgItemDeletedSuccess       = "Item deleted successfully"
	MsgRewardDeletedSuccess     = "Reward deleted successfully"
	MsgDareDeletedSuccess       = "Dare deleted successfully"
	MsgTournamentDeletedSuccess = "Tournament deleted successfully"
	MsgRoomDeletedSuccess       = "Room deleted successfully"
	MsgPromotionDeletedSuccess  = "Promotion deleted successfully"
)
