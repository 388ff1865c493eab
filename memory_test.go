package xmlrecord

import (
	"io"
	"runtime"
	"testing"
)

// The engine's memory must not grow with the number of records written:
// each record is rendered and flushed, never retained. Compare retained
// heap after writing a small and a large document; the difference must stay
// inside a constant bound.
func TestWriterConstantMemory(t *testing.T) {
	// warm up allocator state
	writeUniformRecords(t, 100)
	runtime.GC()

	small := measureHeapDelta(t, 1_000)
	large := measureHeapDelta(t, 100_000)

	const maxDelta = 512 * 1024
	if large > small+maxDelta {
		t.Fatalf("heap usage grew with record count: 1000 records=%d bytes, 100000 records=%d bytes (delta=%d)",
			small, large, large-small)
	}
}

func writeUniformRecords(t *testing.T, count int) {
	t.Helper()

	s := NewWriter(io.Discard, "data")
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	rec := Record{
		{Name: "id", Value: 12345},
		{Name: "name", Value: "uniform record payload"},
		{Name: "active", Value: true},
	}
	for i := 0; i < count; i++ {
		if err := s.WriteRecord(rec, "row"); err != nil {
			t.Fatalf("WriteRecord() error: %v", err)
		}
	}
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish() error: %v", err)
	}
}

func measureHeapDelta(t *testing.T, count int) uint64 {
	t.Helper()

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	writeUniformRecords(t, count)

	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	if after.HeapAlloc < before.HeapAlloc {
		return 0
	}
	return after.HeapAlloc - before.HeapAlloc
}
