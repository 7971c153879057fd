package math

// Factorial returns n! as a float64. The second return value is false
// for negative n, where the factorial is undefined.
// Results above 22! are not exact and overflow to +Inf past 170!.
func Factorial(n int) (float64, bool) {
    if n < 0 {
        return 0, false
    }
    if n == 0 || n == 1 {
        return 1, true
    }

    result := float64(1)
    for i := 2; i <= n; i++ {
        result *= float64(i)
    }
    return result, true
}
