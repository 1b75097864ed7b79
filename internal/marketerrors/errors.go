package marketerrors

import "errors"

// Session errors
var (
	ErrNotAuthenticated   = errors.New("no user is logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation not allowed for this role")
)

// Lookup errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrBidNotFound     = errors.New("bid not found in auction")
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrToastNotFound   = errors.New("notification not found")
)

// Input errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownField  = errors.New("unknown field")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Storage and external service errors
var (
	ErrQuotaExceeded      = errors.New("storage quota exceeded")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrRemoteUnavailable  = errors.New("remote backend not configured")
	ErrContentUnavailable = errors.New("content generation unavailable")
	ErrMalformedContent   = errors.New("malformed generated content")
)
