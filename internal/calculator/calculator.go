// Package calculator provides stateless integer arithmetic.
// All operations are pure functions; the only failure modes are
// division by zero and invalid factorial input.
package calculator

import "fmt"

// maxFactorialInput is the largest n whose factorial fits in an int64.
const maxFactorialInput = 20

// Add returns the sum of a and b.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns a divided by b as a float64.
// Returns ErrDivisionByZero when b is zero.
func Divide(a, b int64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(a) / float64(b), nil
}

// Factorial returns n! computed recursively.
// Returns an error wrapping ErrInvalidInput when n is negative or when
// the result would not fit in an int64 (n > 20).
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative number %d", ErrInvalidInput, n)
	}
	if n > maxFactorialInput {
		return 0, fmt.Errorf("%w: factorial of %d overflows int64", ErrInvalidInput, n)
	}
	return factorial(n), nil
}

func factorial(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return n * factorial(n-1)
}
