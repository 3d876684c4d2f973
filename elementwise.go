package numvec

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Unary transforms never fail. Domain errors follow IEEE semantics and the
// NaN or ±Inf results are kept as they are.

func (v *Vector) apply(fn func(float64) float64) *Vector {
	dst := make([]float64, v.Len())
	for i, x := range v.raw() {
		dst[i] = fn(x)
	}
	return v.derive(dst)
}

func toRadians(radians bool) float64 {
	if radians {
		return 1
	}
	return math.Pi / 180
}

// Ceil returns the least integer value greater than or equal to each element.
func (v *Vector) Ceil() *Vector { return v.apply(math.Ceil) }

// Floor returns the greatest integer value less than or equal to each element.
func (v *Vector) Floor() *Vector { return v.apply(math.Floor) }

// Exp returns e**x for each element.
func (v *Vector) Exp() *Vector { return v.apply(math.Exp) }

// Exp10 returns 10**x for each element.
func (v *Vector) Exp10() *Vector {
	return v.apply(func(x float64) float64 { return math.Pow(10, x) })
}

// Log returns the natural logarithm of each element.
func (v *Vector) Log() *Vector { return v.apply(math.Log) }

// Log10 returns the decimal logarithm of each element.
func (v *Vector) Log10() *Vector { return v.apply(math.Log10) }

// Abs returns the absolute value of each element.
func (v *Vector) Abs() *Vector { return v.apply(math.Abs) }

// Sqrt returns the square root of each element.
func (v *Vector) Sqrt() *Vector { return v.apply(math.Sqrt) }

// Cos returns the cosine of each element. If radians is false the elements
// are taken as degrees.
func (v *Vector) Cos(radians bool) *Vector {
	k := toRadians(radians)
	return v.apply(func(x float64) float64 { return math.Cos(x * k) })
}

// Sin returns the sine of each element. If radians is false the elements
// are taken as degrees.
func (v *Vector) Sin(radians bool) *Vector {
	k := toRadians(radians)
	return v.apply(func(x float64) float64 { return math.Sin(x * k) })
}

// Tan returns the tangent of each element. If radians is false the elements
// are taken as degrees.
func (v *Vector) Tan(radians bool) *Vector {
	k := toRadians(radians)
	return v.apply(func(x float64) float64 { return math.Tan(x * k) })
}

// Round rounds each element to decimals fractional digits, half away from
// zero. A negative decimals rounds to tens, hundreds and so on.
func (v *Vector) Round(decimals int) *Vector {
	return v.apply(func(x float64) float64 { return scalar.Round(x, decimals) })
}

// CumSum returns the running sums of the elements.
func (v *Vector) CumSum() *Vector {
	return v.derive(floats.CumSum(make([]float64, v.Len()), v.raw()))
}

// CumProd returns the running products of the elements.
func (v *Vector) CumProd() *Vector {
	return v.derive(floats.CumProd(make([]float64, v.Len()), v.raw()))
}

// Add adds x to every element.
func (v *Vector) Add(x float64) *Vector {
	dst := v.Elements()
	floats.AddConst(x, dst)
	return v.derive(dst)
}

// Subtract subtracts x from every element.
func (v *Vector) Subtract(x float64) *Vector {
	return v.apply(func(e float64) float64 { return e - x })
}

// Multiply multiplies every element by x.
func (v *Vector) Multiply(x float64) *Vector {
	dst := v.Elements()
	floats.Scale(x, dst)
	return v.derive(dst)
}

// Divide divides every element by x. Division by zero is not checked and
// yields ±Inf or NaN elements.
func (v *Vector) Divide(x float64) *Vector {
	return v.apply(func(e float64) float64 { return e / x })
}

// Maximum returns the elementwise maximum of v and x.
func (v *Vector) Maximum(x float64) *Vector {
	return v.apply(func(e float64) float64 { return math.Max(e, x) })
}

// Minimum returns the elementwise minimum of v and x.
func (v *Vector) Minimum(x float64) *Vector {
	return v.apply(func(e float64) float64 { return math.Min(e, x) })
}

func (v *Vector) combine(other *Vector, fn func(dst, a, b []float64) []float64) (*Vector, error) {
	if err := checkLength(v.Len(), other.Len()); err != nil {
		return nil, err
	}
	return v.derive(fn(make([]float64, v.Len()), v.raw(), other.raw())), nil
}

func zip(fn func(a, b float64) float64) func(dst, a, b []float64) []float64 {
	return func(dst, a, b []float64) []float64 {
		for i := range dst {
			dst[i] = fn(a[i], b[i])
		}
		return dst
	}
}

// AddVector returns the elementwise sum of v and other.
func (v *Vector) AddVector(other *Vector) (*Vector, error) {
	return v.combine(other, floats.AddTo)
}

// SubtractVector returns the elementwise difference v - other.
func (v *Vector) SubtractVector(other *Vector) (*Vector, error) {
	return v.combine(other, floats.SubTo)
}

// MultiplyVector returns the elementwise product of v and other.
func (v *Vector) MultiplyVector(other *Vector) (*Vector, error) {
	return v.combine(other, floats.MulTo)
}

// DivideVector returns the elementwise quotient v / other.
// It fails with ErrDivisionByZero if any element of other is zero.
func (v *Vector) DivideVector(other *Vector) (*Vector, error) {
	if err := checkLength(v.Len(), other.Len()); err != nil {
		return nil, err
	}
	for i, x := range other.raw() {
		if x == 0 {
			return nil, fmt.Errorf("%w: divisor element %d is zero", ErrDivisionByZero, i)
		}
	}
	return v.combine(other, floats.DivTo)
}

// MaximumVector returns the elementwise maximum of v and other.
func (v *Vector) MaximumVector(other *Vector) (*Vector, error) {
	return v.combine(other, zip(math.Max))
}

// MinimumVector returns the elementwise minimum of v and other.
func (v *Vector) MinimumVector(other *Vector) (*Vector, error) {
	return v.combine(other, zip(math.Min))
}

// Max returns the largest element.
func (v *Vector) Max() (float64, error) {
	if v.Len() == 0 {
		return 0, fmt.Errorf("%w: max", ErrEmptyVector)
	}
	return floats.Max(v.raw()), nil
}

// Min returns the smallest element.
func (v *Vector) Min() (float64, error) {
	if v.Len() == 0 {
		return 0, fmt.Errorf("%w: min", ErrEmptyVector)
	}
	return floats.Min(v.raw()), nil
}

// Sum returns the sum of the elements, 0 for an empty vector.
func (v *Vector) Sum() float64 {
	return floats.Sum(v.raw())
}
