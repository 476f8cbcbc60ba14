package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "mingle/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Count int    `json:"count" validate:"omitempty,min=1,max=100"`
}

func req(method, body string) *http.Request {
	return httptest.NewRequest(method, "/x", strings.NewReader(body))
}

func TestParseJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		got, err := ParseJSON[payload](req(http.MethodPost, `{"name":"feed","count":5}`))
		if err != nil {
			t.Fatalf("ParseJSON: %v", err)
		}
		if got.Name != "feed" || got.Count != 5 {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("empty body on POST", func(t *testing.T) {
		_, err := ParseJSON[payload](req(http.MethodPost, ""))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("err = %v, want JSON code", err)
		}
	})

	t.Run("empty body on GET is fine", func(t *testing.T) {
		got, err := ParseJSON[payload](req(http.MethodGet, ""))
		if err != nil {
			t.Fatalf("ParseJSON: %v", err)
		}
		if got.Name != "" {
			t.Fatalf("zero value expected, got %+v", got)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseJSON[payload](req(http.MethodPost, `{"name":`))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("err = %v, want JSON code", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := ParseJSON[payload](req(http.MethodPost, `{"name":"ok","nope":1}`))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("err = %v, want JSON code", err)
		}
	})

	t.Run("validation failure names the json field", func(t *testing.T) {
		_, err := ParseJSON[payload](req(http.MethodPost, `{"name":"x"}`))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("err = %v, want validation code", err)
		}
		e, ok := perr.As(err)
		if !ok || e.Field() != "name" {
			t.Fatalf("field = %+v", e)
		}
	})

	t.Run("trailing data rejected", func(t *testing.T) {
		_, err := ParseJSON[payload](req(http.MethodPost, `{"name":"ok"} extra`))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("err = %v, want JSON code", err)
		}
	})
}
