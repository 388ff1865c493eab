package recordio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	xmlrecord "github.com/whyarkadas/optimized-xml-writer"
)

// Lines are capped well above any sane record size; a longer line is
// reported as an error rather than silently split.
const maxJSONLineSize = 16 * 1024 * 1024

// JSONLScanner reads one JSON object per line and yields each as a Record,
// preserving the document's own key order. Blank lines are skipped. A line
// that is not valid JSON, or whose top-level value is not an object, stops
// the scan with an error naming the line.
type JSONLScanner struct {
	sc   *bufio.Scanner
	line int
	rec  xmlrecord.Record
	err  error
}

// NewJSONLScanner returns a JSONLScanner reading from r.
func NewJSONLScanner(r io.Reader) *JSONLScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxJSONLineSize)
	return &JSONLScanner{sc: sc}
}

// Scan advances to the next non-blank line.
func (s *JSONLScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" {
			continue
		}
		if !gjson.Valid(text) {
			s.err = fmt.Errorf("recordio: line %d: invalid JSON", s.line)
			return false
		}
		doc := gjson.Parse(text)
		if !doc.IsObject() {
			s.err = fmt.Errorf("recordio: line %d: top-level JSON value is not an object", s.line)
			return false
		}
		s.rec = objectRecord(doc)
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = fmt.Errorf("recordio: line %d: %w", s.line+1, err)
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *JSONLScanner) Record() xmlrecord.Record { return s.rec }

// Err returns the first error encountered, or nil at clean EOF.
func (s *JSONLScanner) Err() error { return s.err }

// Line returns the line number of the last record returned.
func (s *JSONLScanner) Line() int { return s.line }

func objectRecord(doc gjson.Result) xmlrecord.Record {
	var rec xmlrecord.Record
	doc.ForEach(func(key, value gjson.Result) bool {
		rec = append(rec, xmlrecord.Field{Name: key.String(), Value: jsonValue(value)})
		return true
	})
	return rec
}

func jsonValue(res gjson.Result) any {
	if res.IsObject() {
		return objectRecord(res)
	}
	if res.IsArray() {
		members := res.Array()
		items := make([]any, 0, len(members))
		for _, m := range members {
			items = append(items, jsonValue(m))
		}
		return items
	}
	switch res.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Null:
		return nil
	case gjson.Number:
		// JSON has one number type; keep integral values integral so
		// they render without a fractional part.
		n := res.Num
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
		return n
	default:
		return res.String()
	}
}
