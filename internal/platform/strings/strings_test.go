package strings

import (
	"testing"

	"mingle/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("feed", "name"); got != "feed" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"feed", "/feed"},
		{"/feed", "/feed"},
		{"/feed/", "/feed"},
		{"  /feed  ", "/feed"},
	}
	for _, tc := range cases {
		if got := MustPrefix(tc.in); got != tc.want {
			t.Errorf("MustPrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix("/") })
}

func TestPtrDeref(t *testing.T) {
	if Ptr("") != nil {
		t.Errorf("empty string must map to nil")
	}
	if got := Deref(Ptr("x")); got != "x" {
		t.Errorf("round trip = %q", got)
	}
	if Deref(nil) != "" {
		t.Errorf("nil derefs to empty")
	}
}

func TestSQLNull(t *testing.T) {
	if SQLNull(" ") != nil {
		t.Errorf("blank must insert NULL")
	}
	if got := SQLNull("v"); got != "v" {
		t.Errorf("SQLNull = %v", got)
	}
}
