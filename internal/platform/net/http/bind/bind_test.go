package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "tirefit/internal/platform/errors"
)

type payload struct {
	Label string  `json:"label" validate:"required,min=5"`
	Speed float64 `json:"speed" validate:"gte=0,lte=300"`
	Width int     `json:"width" validate:"omitempty,min=125,max=355"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"label":"205/55R16","speed":100}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "205/55R16" || got.Speed != 100 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_JSONErrors(t *testing.T) {
	cases := map[string]string{
		"empty":    ``,
		"blank":    "  \n ",
		"broken":   `{`,
		"unknown":  `{"label":"205/55R16","extra":1}`,
		"trailing": `{"label":"205/55R16"} {}`,
		"type":     `{"label":205}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(body))
			_, err := ParseJSON[payload](req)
			if perr.CodeOf(err) != perr.ErrorCodeJSON {
				t.Fatalf("expected JSON error, got %v (%v)", perr.CodeOf(err), err)
			}
		})
	}
}

func TestParseJSON_UnknownAllowed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"label":"205/55R16","extra":1}`))
	if _, err := ParseJSON[payload](req, Options{DisallowUnknown: false}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"label":"205/55R16"}`))
	_, err := ParseJSON[payload](req, Options{MaxBytes: 8, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("truncated body should fail as JSON, got %v", err)
	}
}

func TestParseJSON_ValidationCollectsAll(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"label":"x","speed":-1,"width":100}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation code, got %v (%v)", perr.CodeOf(err), err)
	}
	e, _ := perr.As(err)
	if e.Field() != "label" {
		t.Fatalf("field = %q, want label", e.Field())
	}
	d := e.Details()
	if len(d) != 3 {
		t.Fatalf("details = %v", d)
	}
	want := []string{
		"label must be at least 5",
		"speed must be at least 0",
		"width must be at least 125",
	}
	for i := range want {
		if d[i] != want[i] {
			t.Fatalf("detail %d = %q, want %q", i, d[i], want[i])
		}
	}
}

type tagged struct {
	Code string `json:"code" validate:"omitempty,even_len"`
}

func TestRegisterTag(t *testing.T) {
	err := RegisterTag("even_len", func(fl FieldLevel) bool {
		return len(fl.Field().String())%2 == 0
	}, "{0} must have an even length")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := Validate(tagged{Code: "ab"}); err != nil {
		t.Fatalf("valid value rejected: %v", err)
	}
	err = Validate(tagged{Code: "abc"})
	e, ok := perr.As(err)
	if !ok || len(e.Details()) != 1 || e.Details()[0] != "code must have an even length" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestMessages_Foreign(t *testing.T) {
	if f, m := Messages(nil); f != "" || m != nil {
		t.Fatalf("nil: %q %v", f, m)
	}
	if _, m := Messages(perr.Internalf("boom")); len(m) != 1 || m[0] != "boom" {
		t.Fatalf("foreign: %v", m)
	}
}
