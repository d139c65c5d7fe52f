package apperrors

import "errors"

var (
	ErrInvalidRequest            = errors.New("invalid request")
	ErrInternalServer            = errors.New("internal server error")
	ErrInvalidAuthHeader         = errors.New("invalid or missing Authorization header")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrInvalidAmount             = errors.New("invalid withdrawal amount")
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrWithdrawalNotFound        = errors.New("withdrawal not found")
	ErrInvalidOrExpiredChallenge = errors.New("invalid or expired withdrawal challenge")
	ErrNodeUnavailable           = errors.New("lightning node unavailable")
	ErrPaymentFailed             = errors.New("payment failed")
	ErrAmbiguousPaymentOutcome   = errors.New("payment outcome unknown")
	ErrDoubleTransition          = errors.New("state transition already applied")
	ErrPoolNotFound              = errors.New("pool not found")
	ErrPoolDisabled              = errors.New("pool disabled for this event")
	ErrPoolResolved              = errors.New("pool winner already selected")
	ErrAlreadyEntered            = errors.New("user already entered this pool")
	ErrEntryNotFound             = errors.New("pool entry not found")
	ErrNoPaidEntry               = errors.New("user has no paid entry in this pool")
)
