package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestWrapPreservesRootAndCode(t *testing.T) {
	root := errors.New("disk full")
	err := Wrap(root, ErrorCodeDB, "insert failed")

	if Root(err) != root {
		t.Fatalf("Root = %v, want original", Root(err))
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("CodeOf = %v, want DB", CodeOf(err))
	}
	if !errors.Is(err, root) {
		t.Fatalf("wrapped error must unwrap to root")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("plain errors map to unknown, got %v", got)
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil maps to unknown")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFoundf("no such feed"), http.StatusNotFound},
		{"invalid arg", InvalidArgf("bad count"), http.StatusUnprocessableEntity},
		{"validation", New(ErrorCodeValidation, "field"), http.StatusBadRequest},
		{"unauthorized", Unauthorizedf("nope"), http.StatusUnauthorized},
		{"unavailable", Unavailablef("down"), http.StatusServiceUnavailable},
		{"db", DBf("boom"), http.StatusInternalServerError},
		{"plain", errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := InvalidArgf("bad value")
	withField := WithField(base, "count")

	e1, _ := As(base)
	e2, ok := As(withField)
	if !ok {
		t.Fatalf("WithField must keep the typed error")
	}
	if e1.Field() != "" || e2.Field() != "count" {
		t.Fatalf("field copy-on-write broken: %q / %q", e1.Field(), e2.Field())
	}
}

func TestWithOp(t *testing.T) {
	err := WithOp(DBf("boom"), "feed.append")
	e, ok := As(err)
	if !ok || e.Op() != "feed.append" {
		t.Fatalf("op = %+v", e)
	}
}

func TestIsCode(t *testing.T) {
	err := Wrap(NotFoundf("gone"), ErrorCodeNotFound, "outer")
	if !IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("IsCode must see the typed code")
	}
	if IsCode(err, ErrorCodeConflict) {
		t.Fatalf("IsCode must not match other codes")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(InvalidArgf("bad cursor"))
	if w.Code != ErrorCodeInvalidArgument || w.Message != "bad cursor" {
		t.Fatalf("wire = %+v", w)
	}
}
