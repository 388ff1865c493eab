package xmlrecord

import (
	"bytes"
	"errors"
)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// open returns a started Session over a fresh buffer.
func open(root string, o ...Option) (*bytes.Buffer, *Session) {
	b := &bytes.Buffer{}
	s := NewWriter(b, root, o...)
	must(s.Start())
	return b, s
}

// doc writes each record under element into a document rooted at root and
// returns the finished output.
func doc(root, element string, recs ...any) string {
	b, s := open(root)
	for _, r := range recs {
		must(s.WriteRecord(r, element))
	}
	must(s.Finish())
	return b.String()
}

var errFlaky = errors.New("flaky writer says no")

// flakyWriter accepts a fixed number of Write calls and fails afterwards.
type flakyWriter struct {
	calls int
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	w.calls--
	if w.calls < 0 {
		return 0, errFlaky
	}
	return len(p), nil
}
