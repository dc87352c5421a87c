package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// AccountErrors
var (
	ErrAccountNotFound     = errors.New("no account found with this email")
	ErrEmailAlreadyExists  = errors.New("an account already exists with this email")
	ErrInvalidEmailDomain  = errors.New("email must be a Bells University address")
	ErrInvalidMatricNumber = errors.New("matric number must match BU/00/00000")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
)

// PaymentErrors
var (
	ErrFeeTypeNotFound  = errors.New("fee type not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrWrongStep        = errors.New("operation not allowed at this step")
)
