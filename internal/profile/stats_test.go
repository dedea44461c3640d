package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanAndMinMax(t *testing.T) {
	x := []float64{25, 30, 40}
	assert.InDelta(t, 31.6667, mean(x), 1e-4)

	min, max := minMax(x)
	assert.Equal(t, 25.0, min)
	assert.Equal(t, 40.0, max)
}

func TestSampleVarianceAndStd(t *testing.T) {
	x := []float64{25, 30, 40}

	v, ok := sampleVariance(x)
	require.True(t, ok)
	assert.InDelta(t, 58.3333, v, 1e-4)

	s, ok := sampleStd(x)
	require.True(t, ok)
	assert.InDelta(t, 7.6376, s, 1e-4)

	_, ok = sampleVariance([]float64{5})
	assert.False(t, ok, "variance undefined for a single observation")
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 1000}

	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-9)
	assert.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 252.25, quantile(sorted, 0.75), 1e-9)
	assert.Equal(t, 1.0, quantile(sorted, 0))
	assert.Equal(t, 1000.0, quantile(sorted, 1))
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.5))
}

func TestPearson(t *testing.T) {
	r, ok := pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)

	r, ok = pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)

	_, ok = pearson([]float64{1}, []float64{2})
	assert.False(t, ok, "undefined below two pairs")

	_, ok = pearson([]float64{1, 2, 3}, []float64{5, 5, 5})
	assert.False(t, ok, "undefined for zero variance")
}

func TestSpearman_MonotonicIsOne(t *testing.T) {
	r, ok := spearman([]float64{1, 2, 3, 4}, []float64{1, 4, 9, 100})
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestRanks_AveragesTies(t *testing.T) {
	got := ranks([]float64{10, 20, 20, 30})
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, got)
}

func TestSkewness(t *testing.T) {
	s, ok := skewness([]float64{1, 2, 3})
	require.True(t, ok)
	assert.InDelta(t, 0.0, s, 1e-9, "symmetric sample has zero skew")

	s, ok = skewness([]float64{1, 2, 6})
	require.True(t, ok)
	assert.InDelta(t, 1.4578, s, 1e-3)

	_, ok = skewness([]float64{1, 2})
	assert.False(t, ok)
	_, ok = skewness([]float64{5, 5, 5})
	assert.False(t, ok, "undefined for constant sample")
}

func TestKurtosis(t *testing.T) {
	k, ok := kurtosis([]float64{1, 2, 3, 4})
	require.True(t, ok)
	assert.InDelta(t, -1.2, k, 1e-9)

	_, ok = kurtosis([]float64{1, 2, 3})
	assert.False(t, ok)
}
