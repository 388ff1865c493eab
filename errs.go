package xmlrecord

import (
	"fmt"
	"runtime"
)

// ErrCollector defers error handling across a series of writes.
//
// A loop that writes several records, or a body that mixes sessions and
// batch writers, ends up with an error check on every line. ErrCollector
// holds the first error from a controlled block and raises it at the end:
//
//	func dump(s *xmlrecord.Session) (err error) {
//		ec := &xmlrecord.ErrCollector{}
//		defer ec.Set(&err)
//		ec.Do(
//			s.WriteRecord(header, "meta"),
//			s.WriteRecord(user, "user"),
//			s.WriteRecord(trailer, "meta"),
//		)
//		return
//	}
//
// This is safe with Session because a write after a failed write simply
// reports the sink's cached error again; nothing is made worse by
// continuing. To panic instead of returning, defer ec.Panic().
//
// The caller must remember to defer either Set or Panic; forgetting both
// swallows errors.
type ErrCollector struct {
	File  string
	Line  int
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ErrCollector) Error() string {
	return fmt.Sprintf("error at %s:%d #%d - %v", e.File, e.Line, e.Index, e.Err)
}

// Panic panics with the collector if any error has been collected. It
// should be called in a defer.
func (e *ErrCollector) Panic() {
	if e.Err != nil {
		panic(e)
	}
}

// Set assigns the collected error, if any, to an external error variable.
// It should be called in a defer with a named return.
func (e *ErrCollector) Set(err *error) {
	if e.Err != nil {
		*err = e
	}
}

// Do retains the first error in a list of errors and discards the rest.
// The calls are not short-circuited on failure - only pass results of
// calls that are safe to make after an earlier one has failed.
func (e *ErrCollector) Do(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			return
		}
	}
}

// Must retains the first error in a list of errors and panics with it.
func (e *ErrCollector) Must(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			panic(e)
		}
	}
}
