package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataprof/internal/dataset"
	"dataprof/internal/profile"
	"dataprof/internal/source"
)

func TestSample_ShapeAndDeterminism(t *testing.T) {
	a := source.Sample(50, 42)
	assert.Equal(t, 50, a.Rows())
	assert.Equal(t, 7, a.Cols())

	b := source.Sample(50, 42)
	for i, col := range a.Columns() {
		assert.Equal(t, col.Cells, b.Columns()[i].Cells, "column %s must be seed-deterministic", col.Name)
	}
}

func TestSample_ProfilesCleanly(t *testing.T) {
	tbl := source.Sample(100, 7)

	report, err := profile.New(profile.Options{}).Profile(tbl)
	require.NoError(t, err)

	byName := make(map[string]dataset.Kind)
	for _, c := range report.Columns {
		byName[c.Name] = c.Type
		assert.Equal(t, 0, c.Missing, "sample data has no missing cells")
	}

	assert.Equal(t, dataset.KindNumeric, byName["age"])
	assert.Equal(t, dataset.KindNumeric, byName["salary"])
	assert.Equal(t, dataset.KindCategorical, byName["category"])
	assert.Equal(t, dataset.KindTemporal, byName["signup_date"])
	assert.Equal(t, dataset.KindBoolean, byName["active"])
}
