// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "tirefit/internal/platform/errors"
	"tirefit/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel so callers need not import validator
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds the validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		svc := &ValidatorSvc{Validator: v, Translator: trans}
		svc.message("min", "{0} must be at least {1}", true)
		svc.message("max", "{0} must be at most {1}", true)
		svc.message("gte", "{0} must be at least {1}", true)
		svc.message("lte", "{0} must be at most {1}", true)
		vSvc = svc
	})
	return vSvc
}

// jsonName reports json tag names in messages
func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// message overrides the translation of tag; {0} is the field and {1} the param when withParam
func (s *ValidatorSvc) message(tag, text string, withParam bool) {
	_ = s.Validator.RegisterTranslation(tag, s.Translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			if withParam {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			}
			msg, _ := t.T(tag, fe.Field())
			return msg
		},
	)
}

// RegisterTag adds a custom validation tag and its message; {0} in message is the field name
func RegisterTag(tag string, fn func(FieldLevel) bool, message string) error {
	svc := Get()
	if err := svc.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	svc.message(tag, message, false)
	return nil
}

// Options controls parsing
type Options struct {
	MaxBytes        int64 // default 64KB
	DisallowUnknown bool  // default true
}

// DefaultOptions is what ParseJSON uses without explicit options
var DefaultOptions = Options{MaxBytes: 64 << 10, DisallowUnknown: true}

// ParseJSON decodes the body into T and validates it.
// Malformed JSON maps to ErrorCodeJSON; rule violations map to ErrorCodeValidation
// with every message in the details, and the first offending field set
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero T
	o := DefaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and maps failures to a perr validation error
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msgs := Messages(err)
	return perr.WithField(perr.Validation("invalid request", msgs), field)
}

// Messages translates every validation failure in err, returning the first field and all messages
func Messages(err error) (field string, msgs []string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return "", nil
		}
		return "", []string{err.Error()}
	}
	tr := Get().Translator
	for i, fe := range verrs {
		if i == 0 {
			field = fe.Field()
		}
		msgs = append(msgs, fe.Translate(tr))
	}
	return field, msgs
}
