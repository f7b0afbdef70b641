package ioutil_test

import (
	"bytes"
	"errors"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qs/internal/ioutil"
)

type errorWriter struct {
	failAfter int
	written   int
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	if ew.written >= ew.failAfter {
		return 0, errtrace.Wrap(errors.New("write failed"))
	}
	n = len(p)
	if ew.written+n > ew.failAfter {
		n = ew.failAfter - ew.written
	}
	ew.written += n
	if n < len(p) {
		return n, errtrace.Wrap(errors.New("write failed"))
	}
	return n, nil
}

func TestCountingWriter_WriteString(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.GetCountingWriter(buf)
	defer ioutil.FreeCountingWriter(cw)

	if _, err := cw.WriteString("abc"); err != nil {
		t.Fatalf("cw.WriteString(abc) error = %v, want nil", err)
	}
	if _, err := cw.WriteString("="); err != nil {
		t.Fatalf("cw.WriteString(=) error = %v, want nil", err)
	}

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := len("abc="); num != want {
		t.Errorf("cw.Result() num = %d, want %d", num, want)
	}
	if got, want := buf.String(), "abc="; got != want {
		t.Errorf("buf.String() = %q, want %q", got, want)
	}
}

func TestCountingWriter_StickyError(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(&errorWriter{failAfter: 2})
	defer ioutil.FreeCountingWriter(cw)

	if _, err := cw.WriteString("abcdef"); err == nil {
		t.Fatal("cw.WriteString(abcdef) error = nil, want error")
	}
	if _, err := cw.Fprint("more"); err == nil {
		t.Fatal("cw.Fprint(more) error = nil, want error")
	}

	num, err := cw.Result()
	if err == nil {
		t.Fatal("cw.Result() error = nil, want error")
	}
	if num != 2 {
		t.Errorf("cw.Result() num = %d, want 2", num)
	}
}
