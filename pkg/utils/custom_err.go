package utils

import "errors"

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAlreadyCheckedIn   = errors.New("member already checked in today")
	ErrMembershipExpired  = errors.New("membership expired")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrDatabaseError      = errors.New("database error")
)
