package qs

import "log/slog"

const (
	// DefaultSep is the default group separator.
	DefaultSep = "&"
	// DefaultEq is the default key-value separator.
	DefaultEq = "="
)

// TransformFunc post-processes decoded values during parsing and
// pre-processes values during rendering. It is invoked exactly once per
// scalar occurrence (once per sequence element) with the associated decoded
// key; its return value replaces the original. A nil TransformFunc is the
// identity.
type TransformFunc func(key string, val Scalar) Scalar

// ParseOptions configures [Parse]. A nil pointer and the zero value both
// select the defaults. Empty separators fall back to the defaults too, so
// callers may set fields selectively.
type ParseOptions struct {
	// Sep separates groups (key-value pairs). Empty selects [DefaultSep].
	Sep string
	// Eq separates a key from its value inside a group. Empty selects [DefaultEq].
	Eq string
	// Transform replaces each decoded value.
	Transform TransformFunc
	// Log receives debug records about discarded malformed groups.
	// If nil, nothing is logged.
	Log *slog.Logger
}

// RenderOptions configures [Values.Render] and [Values.RenderTo]. A nil
// pointer and the zero value both select the defaults; empty separators fall
// back to the defaults too.
type RenderOptions struct {
	// Sep separates groups (key-value pairs). Empty selects [DefaultSep].
	Sep string
	// Eq separates a key from its value inside a group. Empty selects [DefaultEq].
	Eq string
	// Transform replaces each scalar before encoding.
	Transform TransformFunc
}

func orDefault(sep, def string) string {
	if sep == "" {
		return def
	}
	return sep
}
