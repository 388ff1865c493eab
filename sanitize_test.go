package xmlrecord

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

func TestSanitizeName(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"user", "user"},
		{"first name", "first_name"},
		{"123x", "_123x"},
		{"a.b", "a_b"},
		{"a b", "a_b"},
		{"_ok", "_ok"},
		{"UPPER-lower_09", "UPPER-lower_09"},
		{"-leading-hyphen", "_-leading-hyphen"},
		{"9", "_9"},
		{"", "_"},
		{"päron", "p_ron"},
		{"日本語", "___"},
		{"<script>", "_script_"},
	} {
		assert.Equal(t, tc.out, SanitizeName(tc.in), "SanitizeName(%q)", tc.in)
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"", "user", "first name", "123x", "a.b", "---", "日本語",
		"mixed 日本 and ascii", "\x00\x01", "tag\nwith\nnewlines", "&<>'\"",
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		require.Equal(t, once, SanitizeName(once), "sanitize not idempotent for %q", in)
	}
}

func TestSanitizeNameAlwaysValid(t *testing.T) {
	inputs := []string{
		"a", "0", "-", "_", " ", "\t", "&amp;", "über", "ключ", "x y z",
		"...", "4score", "with.dots.and spaces",
	}
	for _, in := range inputs {
		out := SanitizeName(in)
		require.Regexp(t, validNamePattern, out, "SanitizeName(%q) = %q", in, out)
		require.NoError(t, CheckName(out))
	}
}

func TestCheckName(t *testing.T) {
	assert.NoError(t, CheckName("user"))
	assert.NoError(t, CheckName("_1"))
	assert.NoError(t, CheckName("a-b_c9"))
	assert.Error(t, CheckName(""))
	assert.Error(t, CheckName("1a"))
	assert.Error(t, CheckName("-a"))
	assert.Error(t, CheckName("a b"))
	assert.Error(t, CheckName("a.b"))
	assert.Error(t, CheckName("päron"))
}
