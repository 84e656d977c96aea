package calculator

import "errors"

// Sentinel errors for the two failure kinds. Callers match with
// errors.Is; Factorial wraps ErrInvalidInput with a message.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidInput   = errors.New("invalid input")
)
