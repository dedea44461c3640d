package dataset

import (
	"strconv"
	"strings"
	"time"
)

var (
	dateLayouts = []string{
		"2006-01-02",
		"01-02-2006",
		"01/02/2006",
		"01/02/06",
		"1/2/06",
	}

	dateTimeLayouts = []string{
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05Z07:00",
	}
)

// ParseNumber reports whether s is a valid decimal number.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseTemporal tries the recognized date and datetime layouts.
func ParseTemporal(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	for _, layout := range dateTimeLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}

// isBooleanSet reports whether the distinct values form a subset of
// {true,false} (case-insensitive) or {0,1}.
func isBooleanSet(distinct map[string]struct{}) bool {
	word, digit := true, true
	for v := range distinct {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "false":
			digit = false
		case "0", "1":
			word = false
		default:
			return false
		}
	}
	return word || digit
}

// Classify infers the Kind of a column from its non-missing cells.
// catLimit is the maximum distinct-value count for a categorical column.
//
// Boolean is tested before numeric: a {0,1} column satisfies both rules
// and would otherwise never classify as boolean. A column with a declared
// Kind is returned as-is; a column with no non-missing cells and no
// declared kind falls through to text.
func Classify(col *Column, catLimit int) Kind {
	if col.Kind != KindUnknown {
		return col.Kind
	}

	values := col.NonMissing()
	if len(values) == 0 {
		return KindText
	}

	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}

	if isBooleanSet(distinct) {
		return KindBoolean
	}

	numeric, temporal := true, true
	for v := range distinct {
		if numeric {
			if _, ok := ParseNumber(v); !ok {
				numeric = false
			}
		}
		if temporal {
			if _, ok := ParseTemporal(v); !ok {
				temporal = false
			}
		}
		if !numeric && !temporal {
			break
		}
	}
	if numeric {
		return KindNumeric
	}
	if temporal {
		return KindTemporal
	}

	if len(distinct) <= catLimit {
		return KindCategorical
	}
	return KindText
}

// CategoricalLimit computes the distinct-value ceiling for categorical
// classification: the larger of min and pct of the row count.
func CategoricalLimit(rows, min int, pct float64) int {
	byPct := int(pct * float64(rows))
	if byPct > min {
		return byPct
	}
	return min
}
