package kern

import "math"

// orReduce computes the exact OR-factor f→v messages for n parents (each a
// 2-vector [v2f(x=0), v2f(x=1)]) and one child (same shape), at the given
// temperature. It implements this closed-form reduction of the implicit
// 2^(n+1)-entry OR table:
//
//	A          = sum_i parents[i][0]
//	d_i        = parents[i][1] - parents[i][0]
//	S          = sum_i softplus_T(d_i)
//	childOut[0] = A
//	childOut[1] = A + atLeastOne(S, temperature)
//
// and, for each parent j, with A_j/S_j the same sums excluding parent j:
//
//	parentOut[j][0] = LogSumExp_T{ A_j + child[0], A_j + atLeastOne(S_j,T) + child[1] }
//	parentOut[j][1] = A_j + S_j + child[1]
//
// atLeastOne(S,T) folds in the "at least one of these parents is on" mass:
// at T>0 it is the stable identity S + T*log1mexp(-S/T) (correctly -Inf when
// S==0, i.e. when there are no parents to turn on); at T<=0 it is the exact
// max-product case split (all-positive contributors win outright, otherwise
// only the single least-negative gap can be afforded).
func orReduce(parents [][]float64, child []float64, temperature float64) (parentOut [][]float64, childOut [2]float64) {
	n := len(parents)
	d := make([]float64, n)
	sp := make([]float64, n)
	a := 0.0
	s := 0.0
	for i, p := range parents {
		d[i] = p[1] - p[0]
		sp[i] = Softplus(d[i], temperature)
		a += p[0]
		s += sp[i]
	}

	childOut[0] = a
	childOut[1] = a + atLeastOne(d, s, temperature)

	parentOut = make([][]float64, n)
	for j := 0; j < n; j++ {
		aj := a - parents[j][0]
		sj := s - sp[j]

		onemoreJ := atLeastOneExcluding(d, j, sj, temperature)
		off := LogSumExp([]float64{aj + child[0], aj + onemoreJ + child[1]}, temperature)
		on := aj + sj + child[1]

		parentOut[j] = []float64{off, on}
	}
	return parentOut, childOut
}

// atLeastOne returns the log-mass of "at least one of the n parents (with
// on/off gaps d) is on", given S = sum_i softplus_T(d_i).
func atLeastOne(d []float64, s, temperature float64) float64 {
	if len(d) == 0 {
		return math.Inf(-1)
	}
	if temperature > 0 {
		if s == 0 {
			return math.Inf(-1)
		}
		return s + temperature*log1mexp(-s/temperature)
	}
	anyPositive := false
	maxD := math.Inf(-1)
	for _, v := range d {
		if v > 0 {
			anyPositive = true
		}
		if v > maxD {
			maxD = v
		}
	}
	if anyPositive {
		return s
	}
	return maxD
}

// atLeastOneExcluding is atLeastOne restricted to all parents other than j,
// where sj is already S with parent j's softplus term removed.
func atLeastOneExcluding(d []float64, j int, sj, temperature float64) float64 {
	if len(d) <= 1 {
		return math.Inf(-1)
	}
	if temperature > 0 {
		if sj == 0 {
			return math.Inf(-1)
		}
		return sj + temperature*log1mexp(-sj/temperature)
	}
	anyPositive := false
	maxD := math.Inf(-1)
	for i, v := range d {
		if i == j {
			continue
		}
		if v > 0 {
			anyPositive = true
		}
		if v > maxD {
			maxD = v
		}
	}
	if anyPositive {
		return sj
	}
	return maxD
}
