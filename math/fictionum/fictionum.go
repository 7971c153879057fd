// Package fictionum holds a few decorative numbers composed from the
// constants of the math package.
package fictionum

import (
    goMath "math";

    "github.com/marekgalovic/mathlib/math";
)

func Alpha() float64 {
    return (1 + goMath.Atan(60 + math.Phi)) / 1.5
}

func Beta() float64 {
    return (1 + goMath.Asinh(60 + math.E)) / 1.25
}

// Gamma scales log2(e) by √3·e².
func Gamma() float64 {
    return (0.5 + math.Log2E * (goMath.Sqrt(3) * goMath.Exp(2))) / 1.6
}
