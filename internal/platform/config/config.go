// Package config reads application configuration from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"tirefit/internal/platform/logger"
	pstrings "tirefit/internal/platform/strings"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "CORE_FITMENT_").
// Use New() for global access and Prefix for module scopes
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("FITMENT_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it is non-empty
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// must returns the value or panics with the fully-qualified key
func (c Conf) must(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// may parses the value with parse; a missing value or a parse failure returns def.
// Failures are logged so a typo in deployment config is visible
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return c.must(key) }

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	s := c.must(key)
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayPort is MustPort with a default port used when the key is empty
func (c Conf) MayPort(key string, def int) string {
	if _, ok := c.lookup(key); ok {
		return c.MustPort(key)
	}
	return ":" + strconv.Itoa(def)
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty/invalid
func (c Conf) MayInt(key string, def int) int {
	return may(c, key, def, "int", strconv.Atoi)
}

// MayFloat64 returns the value or def if missing/empty/invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, "float64", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool returns the value or def if missing/empty/invalid
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, def, "bool", strconv.ParseBool)
}

// MayDuration returns the value or def if missing/empty/invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayCSV returns the non-blank comma-separated items; def if none
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.lookup(key)
	return pstrings.IfEmpty(pstrings.SplitCSV(s), def)
}

// MayFloats parses a comma-separated list of numbers; def if missing or any item is invalid
func (c Conf) MayFloats(key string, def []float64) []float64 {
	items := c.MayCSV(key, nil)
	if len(items) == 0 {
		return def
	}
	out := make([]float64, 0, len(items))
	for _, it := range items {
		f, err := strconv.ParseFloat(it, 64)
		if err != nil {
			logger.Get().Warn().Str("key", c.key(key)).Str("item", it).Floats64("default", def).
				Msg("invalid number in list; using default")
			return def
		}
		out = append(out, f)
	}
	return out
}

// MayEnum returns the value if it is one of allowed (case-insensitive), def if empty; panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
