package qs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/qs"
)

func TestValue_shape(t *testing.T) {
	t.Parallel()

	var zero qs.Value
	if !zero.IsZero() || zero.IsList() {
		t.Errorf("zero Value: IsZero() = %v, IsList() = %v, want true, false", zero.IsZero(), zero.IsList())
	}
	if got := zero.Scalars(); got != nil {
		t.Errorf("zero.Scalars() = %v, want nil", got)
	}

	one := qs.One(qs.String("x"))
	if one.IsZero() || one.IsList() {
		t.Errorf("scalar Value: IsZero() = %v, IsList() = %v, want false, false", one.IsZero(), one.IsList())
	}
	if sc, ok := one.Scalar(); !ok || sc.Text() != "x" {
		t.Errorf("one.Scalar() = %q, %v, want \"x\", true", sc.Text(), ok)
	}
	if got := len(one.Scalars()); got != 1 {
		t.Errorf("len(one.Scalars()) = %d, want 1", got)
	}

	list := qs.List(qs.String("x"), qs.String("y"))
	if !list.IsList() {
		t.Error("list.IsList() = false, want true")
	}
	if _, ok := list.Scalar(); ok {
		t.Error("list.Scalar() ok = true, want false")
	}
	if got := len(list.Scalars()); got != 2 {
		t.Errorf("len(list.Scalars()) = %d, want 2", got)
	}
}

func TestValue_Clone(t *testing.T) {
	t.Parallel()

	src := []qs.Scalar{qs.String("x"), qs.String("y")}
	list := qs.List(src...)

	// the constructor copies its input
	src[0] = qs.String("changed")
	if got := list.Scalars()[0].Text(); got != "x" {
		t.Errorf("list.Scalars()[0] = %q, want %q", got, "x")
	}

	list2 := list.Clone()
	if !list2.Equal(list) {
		t.Fatal("list.Clone() not equal to original")
	}
	list2.Scalars()[0] = qs.String("mutated")
	if got := list.Scalars()[0].Text(); got != "x" {
		t.Errorf("original mutated through clone: %q, want %q", got, "x")
	}
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    qs.Value
		val  any
		want bool
	}{
		{"zero to zero", qs.Value{}, qs.Value{}, true},
		{"zero to scalar", qs.Value{}, qs.One(qs.Null), false},
		{"scalar equal", qs.One(qs.String("x")), qs.One(qs.String("x")), true},
		{"scalar not equal", qs.One(qs.String("x")), qs.One(qs.String("y")), false},
		{"scalar to single-element list", qs.One(qs.String("x")), qs.List(qs.String("x")), false},
		{"list equal", qs.List(qs.String("x"), qs.String("y")), qs.List(qs.String("x"), qs.String("y")), true},
		{"list order matters", qs.List(qs.String("x"), qs.String("y")), qs.List(qs.String("y"), qs.String("x")), false},
		{"list len differs", qs.List(qs.String("x")), qs.List(qs.String("x"), qs.String("y")), false},
		{"pointer arg", qs.One(qs.String("x")), ptr(qs.One(qs.String("x"))), true},
		{"nil pointer arg", qs.One(qs.String("x")), (*qs.Value)(nil), false},
		{"type mismatch", qs.One(qs.String("x")), "x", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.v.Equal(c.val); got != c.want {
				t.Errorf("v.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestValue_collapseViaParse(t *testing.T) {
	t.Parallel()

	vals, err := qs.Parse("a=1&b=2&a=3", nil)
	if err != nil {
		t.Fatalf("qs.Parse() error = %v, want nil", err)
	}

	a, _ := vals.Get("a")
	if !a.IsList() {
		t.Fatal("vals.Get(a) is not a sequence after repeat")
	}
	var texts []string
	for _, sc := range a.Scalars() {
		texts = append(texts, sc.Text())
	}
	if diff := cmp.Diff(texts, []string{"1", "3"}); diff != "" {
		t.Errorf("sequence order mismatch (-got +want):\n%v", diff)
	}

	b, _ := vals.Get("b")
	if b.IsList() {
		t.Error("vals.Get(b) collapsed without a repeat")
	}
}
