package profile

import (
	"math"
	"sort"
)

func mean(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

func minMax(x []float64) (float64, float64) {
	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		} else if v > max {
			max = v
		}
	}
	return min, max
}

// sampleVariance is the n-1 (Bessel-corrected) variance. Undefined for
// fewer than two observations.
func sampleVariance(x []float64) (float64, bool) {
	n := len(x)
	if n < 2 {
		return 0, false
	}
	m := mean(x)
	ss := 0.0
	for _, v := range x {
		d := v - m
		ss += d * d
	}
	return ss / float64(n-1), true
}

func sampleStd(x []float64) (float64, bool) {
	v, ok := sampleVariance(x)
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// quantile returns the p-quantile (0 <= p <= 1) of a sorted sample using
// linear interpolation between closest ranks.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	rank := p * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func sortedCopy(x []float64) []float64 {
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	return cp
}

// pearson computes the Pearson correlation coefficient. Undefined for
// fewer than two pairs or when either side has zero variance.
func pearson(x, y []float64) (float64, bool) {
	n := float64(len(x))
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		xi, yi := x[i], y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
		sumY2 += yi * yi
	}
	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0, false
	}
	return (n*sumXY - sumX*sumY) / denom, true
}

// spearman is Pearson over fractional ranks.
func spearman(x, y []float64) (float64, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return 0, false
	}
	return pearson(ranks(x), ranks(y))
}

// ranks assigns 1-based ranks, averaging ties.
func ranks(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	out := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && x[idx[j+1]] == x[idx[i]] {
			j++
		}
		// Average rank across the tie run [i, j].
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = r
		}
		i = j + 1
	}
	return out
}

// skewness is the adjusted Fisher-Pearson coefficient (matching the
// conventional bias-corrected definition). Undefined for fewer than
// three observations or a constant sample.
func skewness(x []float64) (float64, bool) {
	n := float64(len(x))
	if len(x) < 3 {
		return 0, false
	}
	m := mean(x)
	var m2, m3 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0, false
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2), true
}

// kurtosis is the bias-corrected excess kurtosis. Undefined for fewer
// than four observations or a constant sample.
func kurtosis(x []float64) (float64, bool) {
	n := float64(len(x))
	if len(x) < 4 {
		return 0, false
	}
	m := mean(x)
	var s2, s4 float64
	for _, v := range x {
		d := v - m
		s2 += d * d
		s4 += d * d * d * d
	}
	if s2 == 0 {
		return 0, false
	}
	variance := s2 / (n - 1)
	g := s4 / (variance * variance)
	return n*(n+1)/((n-1)*(n-2)*(n-3))*g - 3*(n-1)*(n-1)/((n-2)*(n-3)), true
}
