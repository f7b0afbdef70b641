// Package qs converts between delimited key-value strings (query strings)
// and ordered in-memory mappings.
//
// # Overview
//
// Two stateless operations compose the package:
//
//   - [Parse]: query string → [Values] mapping;
//   - [Values.Render] (with [Values.RenderTo] and [Values.String]): mapping →
//     query string.
//
// Both accept custom group and key-value separators, apply URI-component
// percent-encoding, and call an optional [TransformFunc] hook once per scalar
// occurrence.
//
// # Parsing
//
//	vals, err := qs.Parse("a=1&a=2&b=x%20y", nil)
//	if err != nil {
//	    // only invalid percent-escapes fail
//	}
//	vals.Get("a") // sequence ["1", "2"]
//	vals.Get("b") // scalar "x y"
//
// A full URL is accepted transparently: everything up to and including the
// first '?' is stripped. Groups without exactly one key-value separator, such
// as bare flags, are discarded silently. A key repeats by collapsing into a
// sequence that preserves encounter order.
//
// # Rendering
//
//	vals := qs.NewValues().
//	    Set("test", qs.String("a &* b")).
//	    SetList("tags", qs.String("go"), qs.String("net"))
//	s := vals.Render(nil)
//	// test=a%20%26*%20b&tags=go&tags=net
//
// Keys render in insertion order. Scalars are coerced to canonical text
// before encoding: booleans as "true"/"false", numbers in shortest decimal
// form, null as "null". A zero [Value] marks a key absent and renders
// nothing. Rendering never fails.
//
// # Encoding
//
// Keys and values use the URI-component scheme: every byte outside
// alphanumerics and "-", "_", ".", "!", "~", "*", "'", "(", ")" is escaped as
// %XX with uppercase hex. Decoding is strict and is the package's single
// error path, reported as [ErrEscape].
//
// # Separators and hooks
//
//	vals, _ := qs.Parse("a#1|b#2", &qs.ParseOptions{Sep: "|", Eq: "#"})
//	out := vals.Render(&qs.RenderOptions{Sep: "|", Eq: "#"})
//
// Empty separator fields fall back to "&" and "=". The Transform hook in
// either options struct receives (decoded key, value) per scalar occurrence
// and its result replaces the value.
//
// # Thread safety
//
// Values is not safe for concurrent modification. Parse and Render share no
// state between calls; each call allocates an independent result.
package qs
