// Package grammar implements the percent-encoding primitives of the
// URI-component scheme used for query-string keys and values.
package grammar

//go:generate errtrace -w .

import (
	"bytes"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qs/internal/constraints"
	"github.com/ghettovoice/qs/internal/errorutil"
)

// ErrEscape is returned when a percent-escaped sequence cannot be decoded.
const ErrEscape errorutil.Error = "invalid URI escape"

// Escape escapes s by replacing each byte matched by the shouldEscape callback
// with its hex form "% HEXDIG HEXDIG". There is no pass-through for already
// escaped triplets: '%' itself must be matched by the callback so that
// escaping stays reversible.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}

	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsComponentCharUnreserved(c) }
	}

	var b bytes.Buffer
	b.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			b.WriteByte('%')
			b.WriteByte(upperhex[s[i]>>4])
			b.WriteByte(upperhex[s[i]&15])
		} else {
			b.WriteByte(s[i])
		}
	}
	return T(b.Bytes())
}

// Unescape decodes each 3-byte substring of the form "% HEXDIG HEXDIG" into
// the hex-decoded byte. Decoding is strict: a '%' not followed by two hex
// digits yields [ErrEscape], as do escapes that decode to an invalid UTF-8
// sequence.
func Unescape[T constraints.Byteseq](s T) (T, error) {
	var zero T
	if len(s) == 0 {
		return s, nil
	}

	var b bytes.Buffer
	b.Grow(len(s))
	var unescaped bool
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrEscape, "malformed sequence at offset %d", i))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
		unescaped = true
	}
	if unescaped && !utf8.Valid(b.Bytes()) {
		return zero, errtrace.Wrap(errorutil.NewWrapperError(ErrEscape, "escapes decode to invalid UTF-8"))
	}
	return T(b.Bytes()), nil
}

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

var componentUnreservedChars = map[byte]bool{
	'-':  true,
	'_':  true,
	'.':  true,
	'!':  true,
	'~':  true,
	'*':  true,
	'\'': true,
	'(':  true,
	')':  true,
}

// IsComponentCharUnreserved reports whether c survives URI-component encoding
// unescaped. The set is exactly alphanumerics plus "-", "_", ".", "!", "~",
// "*", "'", "(" and ")"; every other byte, including '%', is escaped.
func IsComponentCharUnreserved(c byte) bool {
	return componentUnreservedChars[c] || IsAlphanumChar(c)
}
