package source_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataprof/internal/source"
)

func TestReadCSV(t *testing.T) {
	in := "age,city\n25,NY\n30,LA\nNA,NY\n40,SF\n"

	tbl, err := source.ReadCSV(strings.NewReader(in), source.CSVOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.Rows())
	assert.Equal(t, 2, tbl.Cols())

	age := tbl.Column("age")
	require.NotNil(t, age)
	assert.Equal(t, 1, age.MissingCount())
	assert.Equal(t, []string{"25", "30", "40"}, age.NonMissing())
}

func TestReadCSV_CustomNullMarkers(t *testing.T) {
	in := "x,y\nmissing,1\n1,2\n,3\n"

	tbl, err := source.ReadCSV(strings.NewReader(in), source.CSVOptions{
		NullValues: []string{"missing"},
	})
	require.NoError(t, err)

	x := tbl.Column("x")
	assert.Equal(t, 1, x.MissingCount(), "empty string is not null unless configured")
	assert.Equal(t, []string{"1", ""}, x.NonMissing())
}

func TestReadCSV_MissingHeader(t *testing.T) {
	_, err := source.ReadCSV(strings.NewReader(""), source.CSVOptions{})
	assert.Error(t, err)
}

func TestReadCSV_Delimiter(t *testing.T) {
	in := "a;b\n1;2\n"

	tbl, err := source.ReadCSV(strings.NewReader(in), source.CSVOptions{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Cols())
	assert.Equal(t, []string{"2"}, tbl.Column("b").NonMissing())
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	in := "age,city\n25,NY\nNA,LA\n"
	tbl, err := source.ReadCSV(strings.NewReader(in), source.CSVOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, source.WriteCSV(&buf, tbl))

	back, err := source.ReadCSV(&buf, source.CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows(), back.Rows())
	assert.Equal(t, 1, back.Column("age").MissingCount())
	assert.Equal(t, []string{"NY", "LA"}, back.Column("city").NonMissing())
}
