package domain

import "strconv"

// MaxFibonacciN is the largest n whose Fibonacci number fits in a uint64.
const MaxFibonacciN = 93

// Fibonacci returns the n-th Fibonacci number, F(0) = 0 and F(1) = 1.
// n must be in [0, MaxFibonacciN].
func Fibonacci(n int) (uint64, error) {
	if n < 0 || n > MaxFibonacciN {
		return 0, &ValidationError{Fields: map[string]string{
			"n": "must be between 0 and " + strconv.Itoa(MaxFibonacciN),
		}}
	}

	var a, b uint64 = 0, 1
	for range n {
		a, b = b, a+b
	}
	return a, nil
}
