package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataprof/internal/dataset"
	"dataprof/internal/profile"
)

func numCol(name string, cells []string, valid []bool) *dataset.Column {
	if valid == nil {
		valid = make([]bool, len(cells))
		for i := range valid {
			valid[i] = true
		}
	}
	return &dataset.Column{Name: name, Cells: cells, Valid: valid}
}

func mustTable(t *testing.T, cols ...*dataset.Column) *dataset.Table {
	t.Helper()
	tbl := dataset.New()
	for _, c := range cols {
		require.NoError(t, tbl.AddColumn(c))
	}
	return tbl
}

// Scenario: age=[25,30,NA,40], city=[NY,LA,NY,SF].
func TestProfile_MixedTable(t *testing.T) {
	tbl := mustTable(t,
		numCol("age", []string{"25", "30", "", "40"}, []bool{true, true, false, true}),
		numCol("city", []string{"NY", "LA", "NY", "SF"}, nil),
	)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	assert.Equal(t, profile.Shape{Rows: 4, Cols: 2}, report.Shape)
	require.Len(t, report.Columns, 2)

	age := report.Columns[0]
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, dataset.KindNumeric, age.Type)
	assert.Equal(t, 1, age.Missing)
	assert.Equal(t, 0.25, age.MissingPct)
	require.True(t, age.Mean.Valid)
	assert.InDelta(t, 31.67, age.Mean.Value, 0.01)
	require.True(t, age.Median.Valid)
	assert.Equal(t, 30.0, age.Median.Value)

	city := report.Columns[1]
	assert.Equal(t, dataset.KindCategorical, city.Type)
	assert.Equal(t, 3, city.Unique)
	assert.False(t, city.Mean.Valid, "no numeric stats for categorical columns")

	// Only one numeric column: a single self-pair at 1.0.
	require.Len(t, report.Correlations, 1)
	coef, ok := report.Coef("age", "age")
	require.True(t, ok)
	assert.Equal(t, profile.Fv(1.0), coef)
}

// Scenario: x=[1,2,3,1000] flags row 3 under the default IQR rule.
func TestProfile_IQROutlier(t *testing.T) {
	tbl := mustTable(t, numCol("x", []string{"1", "2", "3", "1000"}, nil))

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	require.Len(t, report.Outliers, 1)
	assert.Equal(t, profile.OutlierFlag{Column: "x", Row: 3, Value: 1000}, report.Outliers[0])
}

// Scenario: zero rows, two declared-numeric columns.
func TestProfile_EmptyTable(t *testing.T) {
	a := &dataset.Column{Name: "a", Kind: dataset.KindNumeric}
	b := &dataset.Column{Name: "b", Kind: dataset.KindNumeric}
	tbl := mustTable(t, a, b)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	assert.Equal(t, profile.Shape{Rows: 0, Cols: 2}, report.Shape)
	assert.Empty(t, report.Outliers)
	assert.Equal(t, 0.0, report.Columns[0].MissingPct)
	assert.False(t, report.Columns[0].Mean.Valid)

	coef, ok := report.Coef("a", "b")
	require.True(t, ok, "the pair must be present in the matrix")
	assert.False(t, coef.Valid, "correlation over no observations is absent, not zero")
}

// Scenario: zero columns is invalid input.
func TestProfile_NoColumns(t *testing.T) {
	_, err := profile.New(profile.Options{}).Profile(dataset.New())
	assert.ErrorIs(t, err, profile.ErrNoColumns)
}

func TestProfile_AllMissingNumeric(t *testing.T) {
	c := &dataset.Column{
		Name:  "v",
		Kind:  dataset.KindNumeric,
		Cells: []string{"", "", "", ""},
		Valid: []bool{false, false, false, false},
	}
	tbl := mustTable(t, c)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	assert.Empty(t, report.Outliers)
	cp := report.Columns[0]
	assert.Equal(t, 4, cp.Missing)
	assert.Equal(t, 1.0, cp.MissingPct)
	assert.False(t, cp.Mean.Valid)
	assert.False(t, cp.Min.Valid)
	assert.False(t, cp.Std.Valid)

	coef, ok := report.Coef("v", "v")
	require.True(t, ok)
	assert.False(t, coef.Valid, "self-pair is absent without observations")
}

func TestProfile_CorrelationSymmetryAndPairwiseComplete(t *testing.T) {
	tbl := mustTable(t,
		numCol("a", []string{"1", "2", "3", "4"}, nil),
		numCol("b", []string{"2", "", "6", "8"}, []bool{true, false, true, true}),
	)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	// Pairwise-complete rows are 0, 2, 3 where b = 2a exactly.
	ab, ok := report.Coef("a", "b")
	require.True(t, ok)
	require.True(t, ab.Valid)
	assert.InDelta(t, 1.0, ab.Value, 1e-9)

	ba, ok := report.Coef("b", "a")
	require.True(t, ok)
	assert.Equal(t, ab, ba)
}

func TestProfile_DegradedColumnDoesNotAbort(t *testing.T) {
	bad := &dataset.Column{
		Name:  "bad",
		Kind:  dataset.KindNumeric,
		Cells: []string{"1", "oops", "3"},
		Valid: []bool{true, true, true},
	}
	tbl := mustTable(t, bad, numCol("good", []string{"1", "2", "3"}, nil))

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	assert.Equal(t, dataset.KindText, report.Columns[0].Type)
	assert.False(t, report.Columns[0].Mean.Valid)

	// The degraded column is excluded from the numeric passes.
	_, ok := report.Coef("bad", "bad")
	assert.False(t, ok)

	good := report.Columns[1]
	assert.Equal(t, dataset.KindNumeric, good.Type)
	require.True(t, good.Mean.Valid)
	assert.Equal(t, 2.0, good.Mean.Value)
}

func TestProfile_OutliersSortedByColumnThenRow(t *testing.T) {
	tbl := mustTable(t,
		numCol("z", []string{"1", "2", "3", "1000"}, nil),
		numCol("a", []string{"-500", "2", "3", "900"}, nil),
	)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	require.NotEmpty(t, report.Outliers)
	for i := 1; i < len(report.Outliers); i++ {
		prev, cur := report.Outliers[i-1], report.Outliers[i]
		sorted := prev.Column < cur.Column ||
			(prev.Column == cur.Column && prev.Row < cur.Row)
		assert.True(t, sorted, "flags out of order at %d: %+v then %+v", i, prev, cur)
	}
	assert.Equal(t, "a", report.Outliers[0].Column)
}

func TestProfile_ZScoreRule(t *testing.T) {
	tbl := mustTable(t, numCol("x", []string{"10", "10", "10", "10", "100"}, nil))

	report, err := profile.New(profile.Options{Rule: profile.ZScore(1.0)}).Profile(tbl)
	require.NoError(t, err)

	require.Len(t, report.Outliers, 1)
	assert.Equal(t, 4, report.Outliers[0].Row)
}

func TestProfile_SpearmanOption(t *testing.T) {
	tbl := mustTable(t,
		numCol("x", []string{"1", "2", "3", "4"}, nil),
		numCol("y", []string{"1", "4", "9", "100"}, nil),
	)

	report, err := profile.New(profile.Options{Correlation: profile.Spearman}).Profile(tbl)
	require.NoError(t, err)

	coef, ok := report.Coef("x", "y")
	require.True(t, ok)
	require.True(t, coef.Valid)
	assert.InDelta(t, 1.0, coef.Value, 1e-9, "monotonic data has rank correlation 1")
}

func TestProfile_DuplicateRows(t *testing.T) {
	tbl := mustTable(t,
		numCol("a", []string{"1", "1", "2", "1"}, nil),
		numCol("b", []string{"x", "x", "x", "x"}, nil),
	)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DuplicateRows)
}

func TestProfile_ProgressCallback(t *testing.T) {
	tbl := mustTable(t,
		numCol("a", []string{"1"}, nil),
		numCol("b", []string{"2"}, nil),
	)

	var seen []string
	opts := profile.Options{OnColumn: func(name string) { seen = append(seen, name) }}
	_, err := profile.New(opts).Profile(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}
