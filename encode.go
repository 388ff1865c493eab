package xmlrecord

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// The encoder writes each leaf element straight to the session's printer as
// it is produced. There is no per-record buffer, so peak memory tracks the
// recursion depth of the current record, not its size.

// encodeElement renders one (name, value) pair as an indented fragment at
// the given nesting depth, sanitizing the name first.
func (s *Session) encodeElement(name string, v any, depth int) error {
	return s.encodeValue(SanitizeName(name), v, depth)
}

func (s *Session) encodeValue(safe string, v any, depth int) error {
	switch tv := v.(type) {
	case Record:
		return s.encodeRecord(safe, tv, depth)
	case map[string]any:
		return s.encodeRecord(safe, RecordFromMap(tv), depth)
	}
	if items, ok := listItems(v); ok {
		return s.encodeList(safe, items, depth)
	}
	if rec, ok := reflectRecord(v); ok {
		return s.encodeRecord(safe, rec, depth)
	}
	return s.encodeScalar(safe, v, depth)
}

func (s *Session) encodeRecord(safe string, rec Record, depth int) error {
	p := s.printer
	p.writeIndent(s.IndentString, depth)
	p.WriteByte('<')
	p.WriteString(safe)
	p.WriteString(">\n")
	for _, f := range rec {
		if err := s.encodeElement(f.Name, f.Value, depth+1); err != nil {
			return err
		}
	}
	p.writeIndent(s.IndentString, depth)
	p.WriteString("</")
	p.WriteString(safe)
	p.WriteString(">\n")
	return p.cachedWriteError()
}

func (s *Session) encodeList(safe string, items []any, depth int) error {
	if s.ArrayPolicy == ArrayIndexedChild {
		p := s.printer
		p.writeIndent(s.IndentString, depth)
		p.WriteByte('<')
		p.WriteString(safe)
		p.WriteString(">\n")
		for i, item := range items {
			if err := s.encodeValue("item_"+strconv.Itoa(i), item, depth+1); err != nil {
				return err
			}
		}
		p.writeIndent(s.IndentString, depth)
		p.WriteString("</")
		p.WriteString(safe)
		p.WriteString(">\n")
		return p.cachedWriteError()
	}

	// Repeat policy: every item renders under the list's own tag at the
	// list's own depth. A list nested directly inside a list falls back
	// through encodeValue to this method with the same tag and depth,
	// which flattens it by one level rather than erroring.
	for _, item := range items {
		if err := s.encodeValue(safe, item, depth); err != nil {
			return err
		}
	}
	return s.printer.cachedWriteError()
}

func (s *Session) encodeScalar(safe string, v any, depth int) error {
	p := s.printer
	p.writeIndent(s.IndentString, depth)
	p.WriteByte('<')
	p.WriteString(safe)
	p.WriteByte('>')
	if err := p.EscapeString(s.scalarText(v)); err != nil {
		return err
	}
	p.WriteString("</")
	p.WriteString(safe)
	p.WriteString(">\n")
	return p.cachedWriteError()
}

// scalarText converts a scalar to its canonical textual form. The scratch
// buffer keeps strconv conversions off the heap.
func (s *Session) scalarText(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case bool:
		if tv {
			return "true"
		}
		return "false"
	case int:
		return string(strconv.AppendInt(s.scratch[:0], int64(tv), 10))
	case int8:
		return string(strconv.AppendInt(s.scratch[:0], int64(tv), 10))
	case int16:
		return string(strconv.AppendInt(s.scratch[:0], int64(tv), 10))
	case int32:
		return string(strconv.AppendInt(s.scratch[:0], int64(tv), 10))
	case int64:
		return string(strconv.AppendInt(s.scratch[:0], tv, 10))
	case uint:
		return string(strconv.AppendUint(s.scratch[:0], uint64(tv), 10))
	case uint8:
		return string(strconv.AppendUint(s.scratch[:0], uint64(tv), 10))
	case uint16:
		return string(strconv.AppendUint(s.scratch[:0], uint64(tv), 10))
	case uint32:
		return string(strconv.AppendUint(s.scratch[:0], uint64(tv), 10))
	case uint64:
		return string(strconv.AppendUint(s.scratch[:0], tv, 10))
	case float32:
		return string(strconv.AppendFloat(s.scratch[:0], float64(tv), 'g', -1, 32))
	case float64:
		return string(strconv.AppendFloat(s.scratch[:0], tv, 'g', -1, 64))
	case time.Time:
		return tv.Format(time.RFC3339)
	case []byte:
		return base64.StdEncoding.EncodeToString(tv)
	case fmt.Stringer:
		return tv.String()
	case error:
		return tv.Error()
	default:
		return fmt.Sprint(tv)
	}
}
