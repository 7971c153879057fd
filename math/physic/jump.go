package physic

import (
    goMath "math";
)

// Gravitational acceleration in m/s^2.
const G = 9.81

type JumpResult struct {
    Time float64
    Velocity float64
}

// Jump returns the time it takes to fall from height (or to reach it when
// jumping) and the velocity at impact (or take-off).
// A negative height yields NaN in both fields.
func Jump(height float64) JumpResult {
    time := goMath.Sqrt((2 * height) / G)
    return JumpResult {
        Time: time,
        Velocity: G * time,
    }
}
