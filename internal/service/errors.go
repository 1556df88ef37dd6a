package service

import "errors"

var (
	ErrFollowSelf      = errors.New("cannot follow self")
	ErrMissingID       = errors.New("id is required")
	ErrInvalidAmount   = errors.New("amount must be a positive integer")
	ErrInvalidPurpose  = errors.New("unknown support purpose")
	ErrInvalidPayment  = errors.New("unknown payment method")
	ErrInvalidType     = errors.New("unknown notification type")
	ErrInvalidVisible  = errors.New("unknown visibility")
	ErrEmptyContent    = errors.New("content is required")
	ErrNotSupporter    = errors.New("board posting requires supporter tier")
	ErrNotAuthor       = errors.New("only the author or board owner can delete")
	ErrEmailRegistered = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
)
