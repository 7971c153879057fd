package math

import (
    goMath "math";
)

func Add(a, b float64) float64 {
    return a + b
}

func Subtract(a, b float64) float64 {
    return a - b
}

func Multiply(a, b float64) float64 {
    return a * b
}

// Divide does not guard against zero. x/0 yields ±Inf and 0/0 yields NaN.
func Divide(a, b float64) float64 {
    return a / b
}

func Exp(x float64) float64 {
    return goMath.Exp(x)
}

func Pow(x, y float64) float64 {
    return goMath.Pow(x, y)
}

func Sin(x float64) float64 {
    return goMath.Sin(x)
}

func Cos(x float64) float64 {
    return goMath.Cos(x)
}

func Tan(x float64) float64 {
    return goMath.Tan(x)
}

func Sqrt(x float64) float64 {
    return goMath.Sqrt(x)
}

// Pythagr returns the hypotenuse of a right triangle with legs a and b.
func Pythagr(a, b float64) float64 {
    return goMath.Sqrt(a * a + b * b)
}
