package xmlrecord

import "fmt"

// SanitizeName maps an arbitrary record key onto a valid XML element name.
// Every rune outside [A-Za-z0-9_-] is replaced with an underscore, and if
// the result does not begin with a letter or underscore it gains a leading
// underscore. The empty string maps to "_".
//
// The mapping is deterministic and idempotent, and deliberately lossy:
// distinct keys such as "a.b" and "a b" both sanitize to "a_b". Collisions
// are accepted; the mapping is not reversible.
func SanitizeName(key string) string {
	if key == "" {
		return "_"
	}
	if err := CheckName(key); err == nil {
		return key
	}

	out := make([]byte, 0, len(key)+1)
	for _, rn := range key {
		if isNameRune(rn) {
			out = append(out, byte(rn))
		} else {
			out = append(out, '_')
		}
	}
	if !isNameStartByte(out[0]) {
		out = append(out, 0)
		copy(out[1:], out)
		out[0] = '_'
	}
	return string(out)
}

// CheckName reports whether name is a well-formed element name as this
// package's writer produces them: a letter or underscore followed by any
// number of letters, digits, underscores or hyphens. It returns an error
// describing the first offending position, or an error on the empty string.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("xmlrecord: name must not be empty")
	}
	for i, rn := range name {
		if i == 0 {
			if rn > 0x7F || !isNameStartByte(byte(rn)) {
				return fmt.Errorf("xmlrecord: invalid name at position %d: %c", i, rn)
			}
			continue
		}
		if !isNameRune(rn) {
			return fmt.Errorf("xmlrecord: invalid name at position %d: %c", i, rn)
		}
	}
	return nil
}

func isNameStartByte(c byte) bool {
	return c == '_' ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}

func isNameRune(rn rune) bool {
	return rn == '_' || rn == '-' ||
		(rn >= 'A' && rn <= 'Z') ||
		(rn >= 'a' && rn <= 'z') ||
		(rn >= '0' && rn <= '9')
}
