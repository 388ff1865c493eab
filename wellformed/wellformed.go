// Package wellformed re-checks documents produced by xmlrecord. It is a
// downstream consumer, not part of the writer's contract: it re-opens the
// finished output and verifies that it starts with an XML declaration and
// that every start tag is balanced by a matching end tag. It is not a full
// XML validator.
package wellformed

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

const declPrefix = "<?xml"

// CheckError describes why a document failed the check.
type CheckError struct {
	// Offset is the byte position the problem was detected at, or -1 when
	// it applies to the document as a whole.
	Offset int64
	Reason string
}

func (e *CheckError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("wellformed: %s", e.Reason)
	}
	return fmt.Sprintf("wellformed: offset %d: %s", e.Offset, e.Reason)
}

// CheckFile opens path and runs Check over its contents.
func CheckFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("wellformed: %w", err)
	}
	defer f.Close()
	return Check(f)
}

// Check reads an entire document from r and verifies that it begins with
// an XML declaration and that its start and end tags balance. The document
// is streamed through a tokenizer with an explicit tag stack; memory use is
// bounded by nesting depth, not document size.
func Check(r io.Reader) error {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(declPrefix))
	if err != nil || string(head) != declPrefix {
		return &CheckError{Offset: -1, Reason: "document does not begin with an XML declaration"}
	}

	dec := xml.NewDecoder(br)
	var stack []string
	for {
		// RawToken leaves tag matching to our stack so mismatches are
		// reported in this package's terms.
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &CheckError{Offset: dec.InputOffset(), Reason: err.Error()}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) == 0 {
				return &CheckError{
					Offset: dec.InputOffset(),
					Reason: fmt.Sprintf("end tag </%s> with no open element", t.Name.Local),
				}
			}
			if top := stack[len(stack)-1]; top != t.Name.Local {
				return &CheckError{
					Offset: dec.InputOffset(),
					Reason: fmt.Sprintf("end tag </%s> does not match open element <%s>", t.Name.Local, top),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return &CheckError{
			Offset: -1,
			Reason: fmt.Sprintf("%d element(s) left open, innermost <%s>", len(stack), stack[len(stack)-1]),
		}
	}
	return nil
}
