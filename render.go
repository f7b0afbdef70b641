package qs

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qs/internal/grammar"
	"github.com/ghettovoice/qs/internal/ioutil"
	"github.com/ghettovoice/qs/internal/util"
)

func shouldEscapeComponentChar(c byte) bool { return !grammar.IsComponentCharUnreserved(c) }

// RenderTo writes the query-string form of the mapping to w.
//
// Keys are emitted in insertion order and percent-encoded once per key.
// Absent (zero) values are skipped entirely; sequence values emit one group
// per element in element order. Every scalar passes through opts.Transform
// before its canonical text (see [Scalar.Text]) is percent-encoded. Groups
// are joined with opts.Sep, keys and values with opts.Eq; no leading or
// trailing separator is written.
//
// The returned error can only originate from w.
func (vals *Values) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if vals == nil {
		return 0, nil
	}

	sep, eq := DefaultSep, DefaultEq
	var transform TransformFunc
	if opts != nil {
		sep = orDefault(opts.Sep, sep)
		eq = orDefault(opts.Eq, eq)
		transform = opts.Transform
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var n int
	for _, key := range vals.keys {
		v := vals.entries[key]
		if v.IsZero() {
			continue
		}
		ek := grammar.Escape(key, shouldEscapeComponentChar)
		for _, sc := range v.Scalars() {
			if transform != nil {
				sc = transform(key, sc)
			}
			if n > 0 {
				cw.WriteString(sep)
			}
			cw.WriteString(ek)
			cw.WriteString(eq)
			cw.WriteString(grammar.Escape(sc.Text(), shouldEscapeComponentChar))
			n++
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the query-string form of the mapping.
// A nil or empty mapping renders the empty string; Render never fails.
func (vals *Values) Render(opts *RenderOptions) string {
	if vals == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	vals.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the query-string form of the mapping with default separators.
func (vals *Values) String() string {
	if vals == nil {
		return ""
	}
	return vals.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the mapping.
func (vals *Values) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			vals.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, vals.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(vals.String()))
		return
	default:
		type hideMethods Values
		type Values hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Values)(vals))
		return
	}
}
