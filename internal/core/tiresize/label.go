package tiresize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ErrInvalidLabel is returned by Parse for text that is not a size label
var ErrInvalidLabel = errors.New("tiresize: invalid size label")

// labelRe accepts 205/55R16, 205/55 ZR16 91V, 205/55/16, 205 55 16 and 205/55-16 after folding
var labelRe = regexp.MustCompile(`^(\d{3})\s*[/ ]\s*(\d{2})\s*(?:/|Z?R|-)?\s*(\d{2})(?:\s*(\d{2,3}))?\s*([A-Z][0-9]?)?$`)

// foldPool holds transformer chains; chains are stateful so each call takes its own
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,                 // fullwidth digits and solidus to ASCII
			width.Fold,                // any remaining wide forms
			cases.Upper(language.Und), // r16 -> R16, 91v -> 91V
		)
	},
}

func foldLabel(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToUpper(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Parse reads a size label. It checks syntax and the speed symbol only;
// dimension bounds are Validate's job
func Parse(label string) (Size, error) {
	s := foldLabel(label)
	m := labelRe.FindStringSubmatch(s)
	if m == nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	w, _ := strconv.Atoi(m[1])
	p, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	out := New(w, p, d)
	if m[4] != "" {
		li, _ := strconv.Atoi(m[4])
		out = out.WithLoadIndex(li)
	}
	if m[5] != "" {
		si, ok := ParseSpeedIndex(m[5])
		if !ok {
			return Size{}, fmt.Errorf("%w: unknown speed rating %q", ErrInvalidLabel, m[5])
		}
		out = out.WithSpeedIndex(si)
	}
	return out, nil
}

// MustParse is Parse for tests and fixed tables, it panics on bad input
func MustParse(label string) Size {
	s, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return s
}

// Format renders the canonical label "205/55 R16", followed by " 91V" when indexes are set
func Format(s Size) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d R%d", s.Width, s.Profile, s.Diameter)
	if s.HasLoadIndex() || s.SpeedIndex.IsSet() {
		b.WriteByte(' ')
		if s.HasLoadIndex() {
			b.WriteString(strconv.Itoa(s.Load()))
		}
		b.WriteString(string(s.SpeedIndex))
	}
	return b.String()
}
