package xmlrecord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchWriterDelegatesAtBatchSize(t *testing.T) {
	b, s := open("data")
	bw := NewBatchWriter(s, 3)

	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 1}}, "row"))
	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 2}}, "row"))
	assert.Equal(t, 2, bw.Pending())
	assert.NotContains(t, b.String(), "<row>", "records written before batch was full")

	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 3}}, "row"))
	assert.Equal(t, 0, bw.Pending())
	assert.Equal(t, 3, strings.Count(b.String(), "<row>"))
}

func TestBatchWriterFlushWritesPartialBatch(t *testing.T) {
	b, s := open("data")
	bw := NewBatchWriter(s, 10)

	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 1}}, "row"))
	require.NoError(t, bw.Flush())
	assert.Equal(t, 0, bw.Pending())
	assert.Equal(t, 1, strings.Count(b.String(), "<row>"))
}

func TestBatchWriterFinishFlushesAndFinishes(t *testing.T) {
	b, s := open("data")
	bw := NewBatchWriter(s, 10)

	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 1}}, "row"))
	require.NoError(t, bw.Finish())
	assert.True(t, s.Closed())
	out := b.String()
	assert.Contains(t, out, "<row>")
	assert.True(t, strings.HasSuffix(out, "</data>\n"))
}

func TestBatchWriterOrderPreserved(t *testing.T) {
	b, s := open("data")
	bw := NewBatchWriter(s, 2)
	for i := 1; i <= 5; i++ {
		require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: i}}, "row"))
	}
	require.NoError(t, bw.Finish())

	out := b.String()
	last := -1
	for i := 1; i <= 5; i++ {
		pos := strings.Index(out, "<n>"+string(rune('0'+i))+"</n>")
		require.Greater(t, pos, last, "record %d out of order", i)
		last = pos
	}
}

func TestBatchWriterRetainsQueueOnError(t *testing.T) {
	// prolog flush succeeds, the first record flush fails
	s := NewWriter(&flakyWriter{calls: 1}, "data")
	require.NoError(t, s.Start())
	bw := NewBatchWriter(s, 2)

	require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: 1}}, "row"))
	err := bw.WriteRecord(Record{{Name: "n", Value: 2}}, "row")
	require.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 2, bw.Pending(), "failed batch should stay queued")
}

func TestBatchWriterDefaultSize(t *testing.T) {
	_, s := open("data")
	bw := NewBatchWriter(s, 0)
	for i := 0; i < defaultBatchSize-1; i++ {
		require.NoError(t, bw.WriteRecord(Record{{Name: "n", Value: i}}, "row"))
	}
	assert.Equal(t, defaultBatchSize-1, bw.Pending())
}
