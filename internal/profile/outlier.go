package profile

import "math"

// OutlierRule flags anomalous values in a numeric sample. values holds
// the non-missing observations and rows their original row indices.
type OutlierRule interface {
	Flag(column string, values []float64, rows []int) []OutlierFlag
}

// IQRRule fences values at [Q1 - k*IQR, Q3 + k*IQR] and flags values
// strictly outside. Needs at least 4 observations for a quartile split.
type IQRRule struct {
	Factor float64
}

// IQR returns the interquartile-range rule with the given factor.
func IQR(factor float64) IQRRule {
	return IQRRule{Factor: factor}
}

func (r IQRRule) Flag(column string, values []float64, rows []int) []OutlierFlag {
	if len(values) < 4 {
		return nil
	}
	sorted := sortedCopy(values)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lo := q1 - r.Factor*iqr
	hi := q3 + r.Factor*iqr

	var flags []OutlierFlag
	for i, v := range values {
		if v < lo || v > hi {
			flags = append(flags, OutlierFlag{Column: column, Row: rows[i], Value: v})
		}
	}
	return flags
}

// ZScoreRule flags values whose absolute z-score (against the sample
// mean and std) exceeds the threshold.
type ZScoreRule struct {
	Threshold float64
}

func ZScore(threshold float64) ZScoreRule {
	return ZScoreRule{Threshold: threshold}
}

func (r ZScoreRule) Flag(column string, values []float64, rows []int) []OutlierFlag {
	if len(values) < 4 {
		return nil
	}
	std, ok := sampleStd(values)
	if !ok || std == 0 {
		return nil
	}
	m := mean(values)

	var flags []OutlierFlag
	for i, v := range values {
		if math.Abs(v-m)/std > r.Threshold {
			flags = append(flags, OutlierFlag{Column: column, Row: rows[i], Value: v})
		}
	}
	return flags
}
