package qs

//go:generate errtrace -w .

import (
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qs/internal/constraints"
	"github.com/ghettovoice/qs/internal/grammar"
	"github.com/ghettovoice/qs/internal/log"
)

// ErrEscape is returned by [Parse] when a surviving group carries an invalid
// percent-escape.
const ErrEscape = grammar.ErrEscape

// Parse parses a query string from the given input src (string or []byte)
// into an ordered mapping.
//
// A full URL is accepted transparently: everything up to and including the
// first '?' is stripped before parsing. The remainder is split into groups on
// opts.Sep and each group into exactly two parts on opts.Eq; a group that
// splits into any other number of parts (a bare flag, a stray separator) is
// discarded silently. Keys and values of surviving groups are percent-decoded
// independently, the decoded value is passed through opts.Transform, and the
// result is inserted under the decoded key, repeated keys collapsing into
// sequences in encounter order.
//
// Malformed structure never fails: the result degrades to a partial or empty
// mapping. The single error path is an invalid percent-escape in a surviving
// group, reported as [ErrEscape].
func Parse[T constraints.Byteseq](src T, opts *ParseOptions) (*Values, error) {
	sep, eq := DefaultSep, DefaultEq
	var transform TransformFunc
	logger := log.Noop
	if opts != nil {
		sep = orDefault(opts.Sep, sep)
		eq = orDefault(opts.Eq, eq)
		transform = opts.Transform
		if opts.Log != nil {
			logger = opts.Log
		}
	}

	qstr := string(src)
	if i := strings.IndexByte(qstr, '?'); i >= 0 {
		qstr = qstr[i+1:]
	}

	vals := NewValues()
	if qstr == "" {
		return vals, nil
	}

	for _, group := range strings.Split(qstr, sep) {
		parts := strings.Split(group, eq)
		if len(parts) != 2 {
			logger.Debug("qs: discard malformed group", slog.String("group", group))
			continue
		}
		key, err := grammar.Unescape(parts[0])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		val, err := grammar.Unescape(parts[1])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		sc := String(val)
		if transform != nil {
			sc = transform(key, sc)
		}
		vals.Add(key, sc)
	}
	return vals, nil
}
