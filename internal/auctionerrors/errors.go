package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicatePlayer   = errors.New("player already exists")
	ErrStaleBid          = errors.New("player changed since it was read")
)

// Authentication and authorization errors
var (
	ErrMissingToken    = errors.New("no authorization token provided")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrForbidden       = errors.New("role not permitted for this action")
	ErrInvalidPassword = errors.New("invalid password")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrBidTooLow         = errors.New("bid amount must be higher than current bid")
	ErrPlayerAlreadySold = errors.New("player already sold")
	ErrNoBids            = errors.New("player has no bids to finalize")
)

// Kind groups errors into the categories the transport layer reports on.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// KindOf classifies err. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidPassword):
		return KindValidation
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrForbidden):
		return KindAuth
	case errors.Is(err, ErrPlayerNotFound),
		errors.Is(err, ErrAccountNotFound):
		return KindNotFound
	case errors.Is(err, ErrBidTooLow),
		errors.Is(err, ErrPlayerAlreadySold),
		errors.Is(err, ErrNoBids),
		errors.Is(err, ErrStaleBid),
		errors.Is(err, ErrDuplicatePlayer):
		return KindConflict
	default:
		return KindInternal
	}
}
