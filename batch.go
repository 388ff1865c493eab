package xmlrecord

const defaultBatchSize = 100

type pending struct {
	rec     any
	element string
}

// BatchWriter groups records and writes them to a held Session in batches.
// It is a decorator: it holds a reference to the Session rather than
// extending it, which keeps batch timing policy separate from XML
// rendering. Records accumulate until the batch size is reached, then each
// one is delegated to Session.WriteRecord in arrival order.
//
// Batching trades the engine's per-record flush for fewer, larger flushes;
// a crash loses at most one unflushed batch. Use it when flush frequency,
// not memory, is the bottleneck.
type BatchWriter struct {
	session *Session
	size    int
	queue   []pending
}

// NewBatchWriter wraps session with a batch of the given size. Sizes below
// 1 use a default of 100.
func NewBatchWriter(session *Session, size int) *BatchWriter {
	if size < 1 {
		size = defaultBatchSize
	}
	return &BatchWriter{
		session: session,
		size:    size,
		queue:   make([]pending, 0, size),
	}
}

// Pending returns the number of records accumulated and not yet written.
func (b *BatchWriter) Pending() int { return len(b.queue) }

// WriteRecord queues rec and flushes the batch when it is full.
func (b *BatchWriter) WriteRecord(rec any, element string) error {
	b.queue = append(b.queue, pending{rec: rec, element: element})
	if len(b.queue) >= b.size {
		return b.Flush()
	}
	return nil
}

// Flush writes every queued record to the held Session. On error the
// failing record and everything after it stay queued, so a retried Flush
// does not drop or duplicate records.
func (b *BatchWriter) Flush() error {
	for i, p := range b.queue {
		if err := b.session.WriteRecord(p.rec, p.element); err != nil {
			n := copy(b.queue, b.queue[i:])
			b.queue = b.queue[:n]
			return err
		}
	}
	b.queue = b.queue[:0]
	return nil
}

// Finish flushes the remaining batch and finishes the held Session.
func (b *BatchWriter) Finish() error {
	if err := b.Flush(); err != nil {
		return err
	}
	return b.session.Finish()
}
