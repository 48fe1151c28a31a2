package kern

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogSumExp returns the temperature-T smoothed maximum of x (spec §4.3):
//
//	T <= 0: max(x)                                       (max-product)
//	T >  0: T * log(sum(exp(x_i/T)))                      (sum-product / smoothed)
//
// implemented with the standard max-shift stabilization so it never
// overflows even when |x_i|/T is large. Returns -Inf for an empty slice.
func LogSumExp(x []float64, temp float64) float64 {
	if len(x) == 0 {
		return math.Inf(-1)
	}
	m := floats.Max(x)
	if temp <= 0 || math.IsInf(m, -1) {
		return m
	}
	sum := 0.0
	for _, v := range x {
		sum += math.Exp((v - m) / temp)
	}
	return m + temp*math.Log(sum)
}

// ArgMax returns the index of the largest value in x, breaking ties by the
// lowest index (spec §4.3: "max-reductions break ties deterministically by
// lowest configuration index").
func ArgMax(x []float64) int {
	best := 0
	for i := 1; i < len(x); i++ {
		if x[i] > x[best] {
			best = i
		}
	}
	return best
}

// Softplus returns the temperature-T smoothed rectifier (spec §4.3's OR/AND
// kernels): T*log(1+exp(x/T)) for T>0, or max(0,x) at T<=0. Implemented via
// math.Log1p on the smaller-magnitude branch for numerical stability.
func Softplus(x, temp float64) float64 {
	if temp <= 0 {
		if x > 0 {
			return x
		}
		return 0
	}
	z := x / temp
	if z > 0 {
		return temp * (z + math.Log1p(math.Exp(-z)))
	}
	return temp * math.Log1p(math.Exp(z))
}

// log1mexp returns log(1 - exp(x)) for x <= 0, stably. It is undefined
// (returns -Inf) at x == 0, the correct limit: log(1-1) = log(0).
func log1mexp(x float64) float64 {
	if x > 0 {
		return math.NaN()
	}
	if x == 0 {
		return math.Inf(-1)
	}
	if x > -math.Ln2 {
		return math.Log(-math.Expm1(x))
	}
	return math.Log1p(-math.Exp(x))
}
