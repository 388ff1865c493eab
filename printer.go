package xmlrecord

import "bufio"

// The escaping loop below follows the shape of encoding/xml's EscapeText,
// specialised to this package's five entities: scanning for the first byte
// that needs an entity keeps the common all-clean string on a single
// WriteString call.

var (
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escQuot = []byte("&quot;")
	escApos = []byte("&apos;")
)

type printer struct {
	*bufio.Writer
}

// return the bufio Writer's cached write error
func (p printer) cachedWriteError() error {
	_, err := p.Write(nil)
	return err
}

// EscapeString writes s with the five XML entities substituted for &, <, >,
// " and '. The ampersand is handled by the same single pass as the rest, so
// already-written entities are never escaped twice.
func (p printer) EscapeString(s string) error {
	i := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '&', '<', '>', '"', '\'':
			goto slow
		}
	}
	p.WriteString(s)
	return p.cachedWriteError()

slow:
	p.WriteString(s[:i])
	last := i
	for ; i < len(s); i++ {
		var esc []byte
		switch s[i] {
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		default:
			continue
		}
		p.WriteString(s[last:i])
		p.Write(esc)
		last = i + 1
	}
	p.WriteString(s[last:])
	return p.cachedWriteError()
}

func (p printer) writeIndent(indent string, depth int) {
	// strings.Repeat massacres the heap
	for i := 0; i < depth; i++ {
		p.WriteString(indent)
	}
}
