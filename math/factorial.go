package math

// MaxExactFactorial is the largest n whose factorial fits in a 64-bit int.
// Larger inputs silently wrap around.
const MaxExactFactorial = 20

// Factorial calculates n! for n >= 1.
// Zero and negative numbers both yield 1.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}
