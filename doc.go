/*
Package xmlrecord provides a fast, forward-only way to stream sequences of
key/value records into a well-formed XML document.

It is built for the "many records, one document" shape of problem: dump a
table, a log, or a feed of decoded JSON objects into an XML file without ever
holding more than one record in memory. Each record is rendered and flushed
to the sink as it is written, so the memory used by the writer is independent
of how many records pass through it.

# Sessions

A Session owns one output sink for its whole lifetime and moves through
exactly three states: unopened, open, closed.

	s := xmlrecord.New("users.xml", "users")
	if err := s.Start(); err != nil {
		return err
	}
	for rec := range source {
		if err := s.WriteRecord(rec, "user"); err != nil {
			return err
		}
	}
	return s.Finish()

Start writes the XML declaration and the root start tag. Finish writes the
root end tag and closes the sink; writes after Finish are silently ignored.
If you would rather not remember to call Finish on every exit path, use the
scoped form, which guarantees it:

	err := xmlrecord.WriteDocument("users.xml", "users", func(s *xmlrecord.Session) error {
		return s.WriteRecord(rec, "user")
	})

# Records

Records are ordered: a Record is a slice of Fields, and fields render in
slice order. Values may be scalars, nested records or maps, or lists. Plain
Go maps are accepted anywhere a value may appear and render in sorted key
order, since Go map iteration order is unspecified.

Element names are derived from field keys by SanitizeName, a deterministic,
idempotent and deliberately lossy mapping onto valid XML names. Text content
is escaped; names are sanitized instead of escaped.

# What it is not

The output format is plain elements only. There is no support for
attributes, namespaces, CDATA, comments or DTDs, no schema validation, and
no coordination between concurrent writers: a Session must only be used from
one goroutine at a time.
*/
package xmlrecord
