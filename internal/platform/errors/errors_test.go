package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeValidation.String() != "validation" {
		t.Fatalf("String = %q", ErrorCodeValidation.String())
	}
	if ErrorCode(77).String() != "code(77)" {
		t.Fatalf("String unknown = %q", ErrorCode(77).String())
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", e.Error())
	}

	if got := Newf(ErrorCodeJSON, "bad json at %d", 12).Error(); got != "bad json at 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	w := Wrapf(src, ErrorCodeUnavailable, "calc %s", "busy")
	if w.Error() != "calc busy: root" {
		t.Fatalf("Wrapf().Error = %q", w.Error())
	}
	if stderrs.Unwrap(w) != src {
		t.Fatalf("Wrapf did not keep orig")
	}
	if got, ok := As(w); !ok || got.Code() != ErrorCodeUnavailable {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if Root(deep) != src {
		t.Fatalf("Root() = %v", Root(deep))
	}
	if WrapIf(nil, ErrorCodeUnknown, "x") != nil || WrapIf(src, ErrorCodeUnknown, "x") == nil {
		t.Fatalf("WrapIf mismatch")
	}
}

func TestMutatorsAreCopyOnWrite(t *testing.T) {
	base := New(ErrorCodeValidation, "invalid tire size")
	withField := WithField(base, "original_size")
	withOp := WithOp(withField, "fitment.alternatives")
	withDetails := WithDetails(withOp, "width must be between 125 and 355 mm, got 100")
	more := WithDetails(withDetails, "profile must be between 25 and 85 %, got 10")

	b, _ := As(base)
	if b.Field() != "" || b.Op() != "" || len(b.Details()) != 0 {
		t.Fatalf("base mutated: %+v", b)
	}
	d, _ := As(withDetails)
	if d.Field() != "original_size" || d.Op() != "fitment.alternatives" || len(d.Details()) != 1 {
		t.Fatalf("withDetails mismatch: %+v", d)
	}
	m, _ := As(more)
	if len(m.Details()) != 2 {
		t.Fatalf("details = %v", m.Details())
	}

	// foreign errors pass through
	src := stderrs.New("plain")
	if WithDetails(src, "x") != src || WithField(src, "f") != src {
		t.Fatalf("foreign error changed")
	}
}

func TestValidationAndWire(t *testing.T) {
	problems := []string{"a", "b"}
	err := Validation("invalid tire size", problems)
	problems[0] = "changed"

	got := WireFrom(err)
	want := Wire{Code: ErrorCodeValidation, Message: "invalid tire size", Details: []string{"a", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WireFrom = %+v, want %+v", got, want)
	}

	if wf := WireFrom(nil); !reflect.DeepEqual(wf, Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", wf)
	}
	if wf := WireFrom(stderrs.New("boom")); wf.Code != ErrorCodeUnknown || wf.Message != "boom" {
		t.Fatalf("WireFrom(foreign) = %+v", wf)
	}

	st, w := HTTP(err)
	if st != http.StatusBadRequest || w.Code != ErrorCodeValidation {
		t.Fatalf("HTTP = %d %+v", st, w)
	}
	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) = %d", st)
	}
}

func TestSugar(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("x"),
		ErrorCodeInvalidArgument: InvalidArgf("x"),
		ErrorCodeJSON:            JSONErrf("x"),
		ErrorCodePanic:           PanicErrf("x"),
		ErrorCodeUnavailable:     Unavailablef("x"),
		ErrorCodeUnknown:         Internalf("x"),
	}
	for code, err := range cases {
		if !IsCode(err, code) {
			t.Fatalf("sugar for %v produced %v", code, CodeOf(err))
		}
	}
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("ErrNotFound code mismatch")
	}
}
