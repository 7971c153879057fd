package math

import (
    goMath "math";
)

const (
    Pi = goMath.Pi
    E = goMath.E
    Sqrt2 = goMath.Sqrt2
    Sqrt1_2 = 1 / goMath.Sqrt2
    Ln2 = goMath.Ln2
    Ln10 = goMath.Ln10
    Log2E = goMath.Log2E
    Log10E = goMath.Log10E
)

// Phi is the golden ratio (1 + √5) / 2, the positive root of x^2 = x + 1.
const Phi = goMath.Phi

// MagicAngle in radians.
var MagicAngle = goMath.Asin(1 / goMath.Sqrt(3))

// Psi is the super golden ratio, the positive root of x^2 = x + Phi.
// It is derived from Phi on every call.
func Psi() float64 {
    return (1 + goMath.Sqrt(1 + 4 * Phi)) / 2
}

func PhiDegree() float64 {
    return 360 / Phi
}

func PsiDegree() float64 {
    return 360 / Psi()
}
