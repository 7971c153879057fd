package mathlib

import (
	"github.com/marekgalovic/mathlib/math/physic";
	"github.com/marekgalovic/mathlib/math/fictionum";
)

// Physic and Fictionum group the nested namespaces under a single import.
var Physic = struct {
	Jump func(float64) physic.JumpResult
} {
	Jump: physic.Jump,
}

var Fictionum = struct {
	Alpha func() float64
	Beta func() float64
	Gamma func() float64
} {
	Alpha: fictionum.Alpha,
	Beta: fictionum.Beta,
	Gamma: fictionum.Gamma,
}
