package config

import (
	"testing"
	"time"

	"mingle/internal/platform/testkit"
)

func TestPrefixChaining(t *testing.T) {
	t.Setenv("A_B_KEY", "v")
	c := New().Prefix("A_").Prefix("B_")
	if got := c.MayString("KEY", ""); got != "v" {
		t.Fatalf("chained prefix read = %q, want v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Setenv("T_NAME", " padded ")
	c := New().Prefix("T_")
	if got := c.MustString("NAME"); got != "padded" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	t.Setenv("T_PORT", "4000")
	c := New().Prefix("T_")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("T_PORT", "99999")
	testkit.MustPanic(t, func() { c.MustPort("PORT") })
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("T_")

	t.Setenv("T_INT", "7")
	t.Setenv("T_BAD_INT", "seven")
	t.Setenv("T_FLOAT", "2.5")
	t.Setenv("T_BOOL", "true")
	t.Setenv("T_DUR", "150ms")

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"int set", c.MayInt("INT", 1), 7},
		{"int default", c.MayInt("NOPE", 1), 1},
		{"int invalid falls back", c.MayInt("BAD_INT", 3), 3},
		{"float set", c.MayFloat("FLOAT", 0), 2.5},
		{"float default", c.MayFloat("NOPE", 1.5), 1.5},
		{"bool set", c.MayBool("BOOL", false), true},
		{"bool default", c.MayBool("NOPE", true), true},
		{"string default", c.MayString("NOPE", "d"), "d"},
		{"duration set", c.MayDuration("DUR", time.Second), 150 * time.Millisecond},
		{"duration default", c.MayDuration("NOPE", time.Second), time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}
