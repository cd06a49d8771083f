package services

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrForbidden              = errors.New("forbidden")
	ErrSelectionMissing       = errors.New("consultation type and time slot are required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrPaymentDeclined        = errors.New("payment declined")
	ErrQuizIncomplete         = errors.New("quiz answers are incomplete")
)
