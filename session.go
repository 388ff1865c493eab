package xmlrecord

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
)

const (
	defaultBufSize = 2048
	defaultIndent  = "  "
)

// Session state errors, returned by Start. See Session.Start.
var (
	ErrSessionOpen   = errors.New("xmlrecord: session already started")
	ErrSessionClosed = errors.New("xmlrecord: session already finished")
)

type sessionState int

const (
	stateUnopened sessionState = iota
	stateOpen
	stateClosed
)

// ArrayPolicy selects how list values are encoded. Both policies exist in
// the wild; which one a document needs depends on its consumer.
type ArrayPolicy int

const (
	// ArrayRepeat repeats the parent tag once per list item, producing
	// sibling elements with the same name. This is the default.
	ArrayRepeat ArrayPolicy = iota

	// ArrayIndexedChild wraps the list in a single parent element and
	// names each item "item_0", "item_1", ... by its position.
	ArrayIndexedChild
)

// Session writes one XML document to one sink, which it owns exclusively
// for its whole lifetime. It is a state machine with three states:
// unopened, open, closed. Start is the only way in to open; Finish is the
// only way out. A finished Session cannot be restarted - construct a new
// one to write again.
//
// A Session must not be used from more than one goroutine at a time.
// Callers producing records concurrently must funnel them into a single
// ordered sequence before writing.
type Session struct {
	path  string
	sink  io.Writer
	file  *os.File
	root  string
	state sessionState

	printer printer

	encName string
	encoder *encoding.Encoder

	// IndentString is written once per nesting level. Defaults to two
	// spaces.
	IndentString string

	// ArrayPolicy controls list encoding. Defaults to ArrayRepeat.
	ArrayPolicy ArrayPolicy

	// InitialBufSize determines how much memory the internal buffer will
	// use. Set to 0 to use the default.
	InitialBufSize int

	scratch []byte
}

// Option is an option to the Session.
type Option func(s *Session)

// WithIndentString configures the Session with a specific per-level indent
// string:
//
//	s := xmlrecord.New(path, "data", xmlrecord.WithIndentString("\t"))
func WithIndentString(indent string) Option {
	return func(s *Session) {
		s.IndentString = indent
	}
}

// WithArrayPolicy selects how the Session encodes list values.
func WithArrayPolicy(policy ArrayPolicy) Option {
	return func(s *Session) {
		s.ArrayPolicy = policy
	}
}

// WithEncoding routes the Session's output through the supplied encoder and
// places encName into the declaration's encoding="..." attribute.
//
// This example writes a document in utf-16be:
//
//	enc := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder()
//	s := xmlrecord.New(path, "data", xmlrecord.WithEncoding("utf-16be", enc))
//
// Records are still passed in as UTF-8 strings - they are converted on the
// fly to the target encoding.
func WithEncoding(encName string, enc *encoding.Encoder) Option {
	return func(s *Session) {
		s.encName = encName
		s.encoder = enc
	}
}

func newSession(root string, options ...Option) *Session {
	s := &Session{
		root:         SanitizeName(root),
		encName:      "UTF-8",
		IndentString: defaultIndent,
		scratch:      make([]byte, 0, 64),
	}
	for _, o := range options {
		o(s)
	}
	if s.InitialBufSize <= 0 {
		s.InitialBufSize = defaultBufSize
	}
	return s
}

// New returns a file-backed Session targeting path. Nothing is opened or
// created until Start.
func New(path string, root string, options ...Option) *Session {
	s := newSession(root, options...)
	s.path = path
	return s
}

// NewWriter returns a Session writing to w. The Session does not close w on
// Finish; the writer remains caller-owned.
func NewWriter(w io.Writer, root string, options ...Option) *Session {
	s := newSession(root, options...)
	s.sink = w
	return s
}

// Closed reports whether the Session has been finished.
func (s *Session) Closed() bool { return s.state == stateClosed }

// Start opens the sink and writes the XML declaration and the root start
// tag. For a file-backed Session this creates or truncates the target file.
//
// Start fails with ErrSessionOpen on an open Session and ErrSessionClosed
// on a finished one: restarting would silently truncate a document that was
// already written, so it is an error rather than a truncation.
func (s *Session) Start() error {
	switch s.state {
	case stateOpen:
		return ErrSessionOpen
	case stateClosed:
		return ErrSessionClosed
	}

	w := s.sink
	if w == nil {
		f, err := os.Create(s.path)
		if err != nil {
			return fmt.Errorf("xmlrecord: start: %w", err)
		}
		s.file = f
		w = f
	}
	if s.encoder != nil {
		w = encoding.HTMLEscapeUnsupported(s.encoder).Writer(w)
	}

	s.printer = printer{bufio.NewWriterSize(w, s.InitialBufSize)}
	s.printer.WriteString(`<?xml version="1.0" encoding="`)
	s.printer.WriteString(s.encName)
	s.printer.WriteString("\"?>\n<")
	s.printer.WriteString(s.root)
	s.printer.WriteString(">\n")

	if err := s.printer.Flush(); err != nil {
		// A failed Start leaves no open session.
		if s.file != nil {
			s.file.Close()
			s.file = nil
		}
		return fmt.Errorf("xmlrecord: start: %w", err)
	}
	s.state = stateOpen
	return nil
}

// WriteRecord renders rec as one element named element, appends it to the
// document and flushes the sink, so no buffered output accumulates across
// calls. rec may be a Record, a map, a list or a scalar.
//
// Writing to a Session that is not open is a silent no-op: a producer that
// keeps going after Finish does no harm and sees no error.
func (s *Session) WriteRecord(rec any, element string) error {
	if s.state != stateOpen {
		return nil
	}
	if err := s.encodeElement(element, rec, 1); err != nil {
		return fmt.Errorf("xmlrecord: write record: %w", err)
	}
	if err := s.printer.Flush(); err != nil {
		return fmt.Errorf("xmlrecord: write record: %w", err)
	}
	return nil
}

// Finish writes the root end tag, flushes, and closes the sink if the
// Session owns it. No-op if the Session is not open. A finished Session
// stays finished.
func (s *Session) Finish() error {
	if s.state != stateOpen {
		return nil
	}
	s.state = stateClosed

	s.printer.WriteString("</")
	s.printer.WriteString(s.root)
	s.printer.WriteString(">\n")
	err := s.printer.Flush()

	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
		s.file = nil
	}
	if err != nil {
		return fmt.Errorf("xmlrecord: finish: %w", err)
	}
	return nil
}

// WriteDocument runs body inside a started file-backed Session and
// guarantees Finish on every exit path, including error returns from body.
// The first error wins: a body error is reported ahead of a Finish error.
//
// This is the preferred way to produce a document; it removes the failure
// mode of forgetting Finish and leaving a file without its root end tag.
func WriteDocument(path string, root string, body func(s *Session) error, options ...Option) error {
	return writeDocument(New(path, root, options...), body)
}

// WriteDocumentTo is WriteDocument over a caller-owned io.Writer.
func WriteDocumentTo(w io.Writer, root string, body func(s *Session) error, options ...Option) error {
	return writeDocument(NewWriter(w, root, options...), body)
}

func writeDocument(s *Session, body func(s *Session) error) (err error) {
	if err = s.Start(); err != nil {
		return err
	}
	defer func() {
		if ferr := s.Finish(); err == nil {
			err = ferr
		}
	}()
	err = body(s)
	return err
}
