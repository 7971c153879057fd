package math

import (
    goMath "math";
    "sync";
    "testing";

    "github.com/stretchr/testify/assert";
)

var operandPairs = [][2]float64 {
    {3, 4},
    {-3, 4},
    {3, -4},
    {-2.5, -0.5},
    {0, 7},
    {7, 0.25},
    {0.1, 0.2},
}

func TestArithmetic(t *testing.T) {
    for _, p := range operandPairs {
        a, b := p[0], p[1]
        assert.Equal(t, a + b, Add(a, b))
        assert.Equal(t, a - b, Subtract(a, b))
        assert.Equal(t, a * b, Multiply(a, b))
        assert.Equal(t, a / b, Divide(a, b))
    }
}

func TestDivideByZero(t *testing.T) {
    assert.True(t, goMath.IsInf(Divide(1, 0), 1))
    assert.True(t, goMath.IsInf(Divide(-1, 0), -1))
    assert.True(t, goMath.IsNaN(Divide(0, 0)))
}

func TestExp(t *testing.T) {
    assert.Equal(t, float64(1), Exp(0))
    assert.InDelta(t, goMath.E, Exp(1), 1e-15)
}

func TestPow(t *testing.T) {
    assert.Equal(t, float64(8), Pow(2, 3))
    assert.Equal(t, float64(9), Pow(-3, 2))
    assert.Equal(t, float64(1), Pow(5, 0))
}

func TestPowMatchesExp(t *testing.T) {
    for _, x := range []float64{0.5, 2, 10, 123.456} {
        for _, y := range []float64{-1.5, 0.25, 3, 7.5} {
            assert.InEpsilon(t, Exp(y * goMath.Log(x)), Pow(x, y), 1e-12)
        }
    }
}

func TestTrigonometry(t *testing.T) {
    assert.Equal(t, float64(0), Sin(0))
    assert.Equal(t, float64(1), Cos(0))
    assert.Equal(t, float64(0), Tan(0))
    assert.InDelta(t, 1, Sin(Pi / 2), 1e-15)
    assert.InDelta(t, -1, Cos(Pi), 1e-15)
    assert.InDelta(t, 1, Tan(Pi / 4), 1e-15)
}

func TestSqrt(t *testing.T) {
    assert.Equal(t, float64(2), Sqrt(4))
    assert.Equal(t, float64(0), Sqrt(0))
    assert.True(t, goMath.IsNaN(Sqrt(-1)))
}

func TestPythagr(t *testing.T) {
    assert.InDelta(t, 5, Pythagr(3, 4), 1e-12)
    assert.InDelta(t, 13, Pythagr(-5, 12), 1e-12)
    assert.Equal(t, float64(0), Pythagr(0, 0))
}

func TestConcurrentCallsAreDeterministic(t *testing.T) {
    psi := Psi()
    fact, _ := Factorial(15)

    var wg sync.WaitGroup
    for i := 0; i < 16; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for j := 0; j < 1000; j++ {
                if Psi() != psi {
                    t.Error("Psi changed between calls")
                    return
                }
                if f, _ := Factorial(15); f != fact {
                    t.Error("Factorial changed between calls")
                    return
                }
            }
        }()
    }
    wg.Wait()
}
