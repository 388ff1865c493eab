package recordio

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlrecord "github.com/whyarkadas/optimized-xml-writer"
)

func TestCSVScanner(t *testing.T) {
	in := "id,name,city\n1,Alice,Utrecht\n2,Bob,Girona\n"
	recs := scanAll(t, NewCSVScanner(strings.NewReader(in)))
	require.Len(t, recs, 2)

	want := xmlrecord.Record{
		{Name: "id", Value: "1"},
		{Name: "name", Value: "Alice"},
		{Name: "city", Value: "Utrecht"},
	}
	if diff := cmp.Diff(want, recs[0]); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Girona", recs[1][2].Value)
}

func TestCSVScannerQuotedFields(t *testing.T) {
	in := "name,motto\n\"Alice & Co\",\"hello, world\"\n"
	recs := scanAll(t, NewCSVScanner(strings.NewReader(in)))
	require.Len(t, recs, 1)
	assert.Equal(t, "Alice & Co", recs[0][0].Value)
	assert.Equal(t, "hello, world", recs[0][1].Value)
}

func TestCSVScannerEmptyInput(t *testing.T) {
	sc := NewCSVScanner(strings.NewReader(""))
	require.False(t, sc.Scan())
	require.Error(t, sc.Err())
	assert.Contains(t, sc.Err().Error(), "no header row")
}

func TestCSVScannerHeaderOnly(t *testing.T) {
	sc := NewCSVScanner(strings.NewReader("id,name\n"))
	assert.False(t, sc.Scan())
	assert.NoError(t, sc.Err())
}

func TestCSVScannerRaggedRow(t *testing.T) {
	sc := NewCSVScanner(strings.NewReader("id,name\n1,Alice\n2\n"))
	require.True(t, sc.Scan())
	require.False(t, sc.Scan())
	require.Error(t, sc.Err())
	assert.Contains(t, sc.Err().Error(), "row 3")
}
