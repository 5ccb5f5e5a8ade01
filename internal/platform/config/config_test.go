package config

import (
	"reflect"
	"testing"
	"time"

	kit "tirefit/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  tirefit ")
	if got := c.MustString("NAME"); got != "tirefit" {
		t.Fatalf("MustString = %q, want %q", got, "tirefit")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_OK", "4000")
	if got := c.MustPort("OK"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	for _, bad := range []string{"0", "70000", "http"} {
		t.Setenv("P_BAD", bad)
		kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	}
	if got := c.MayPort("UNSET", 8080); got != ":8080" {
		t.Fatalf("MayPort default = %q", got)
	}
	if got := c.MayPort("OK", 8080); got != ":4000" {
		t.Fatalf("MayPort set = %q", got)
	}
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("FITMENT_")
	t.Setenv("FITMENT_TOLERANCE", " 2.5 ")
	t.Setenv("FITMENT_WIDTH", "30")
	t.Setenv("FITMENT_SWAGGER", "true")
	t.Setenv("FITMENT_TIMEOUT", "3s")
	t.Setenv("FITMENT_BADINT", "x")
	t.Setenv("FITMENT_BADFLOAT", "1,5")
	t.Setenv("FITMENT_BADBOOL", "maybe")
	t.Setenv("FITMENT_BADDUR", "forever")

	if got := c.MayFloat64("TOLERANCE", 3); got != 2.5 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayInt("WIDTH", 20); got != 30 {
		t.Fatalf("MayInt = %v", got)
	}
	if !c.MayBool("SWAGGER", false) {
		t.Fatalf("MayBool want true")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 3*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}

	// invalid values fall back to the default
	if got := c.MayInt("BADINT", 20); got != 20 {
		t.Fatalf("MayInt invalid = %v", got)
	}
	if got := c.MayFloat64("BADFLOAT", 3); got != 3 {
		t.Fatalf("MayFloat64 invalid = %v", got)
	}
	if c.MayBool("BADBOOL", false) {
		t.Fatalf("MayBool invalid should use default")
	}
	if got := c.MayDuration("BADDUR", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSVAndFloats(t *testing.T) {
	c := New().Prefix("L_")
	t.Setenv("L_SPEEDS", " 60, 80 ,, 100 ")
	t.Setenv("L_BLANK", " , ,")
	t.Setenv("L_BAD", "60,fast")

	if got := c.MayCSV("SPEEDS", nil); !reflect.DeepEqual(got, []string{"60", "80", "100"}) {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayCSV("BLANK", []string{"d"}); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("MayCSV blank = %#v", got)
	}

	def := []float64{1, 2}
	if got := c.MayFloats("SPEEDS", def); !reflect.DeepEqual(got, []float64{60, 80, 100}) {
		t.Fatalf("MayFloats = %#v", got)
	}
	if got := c.MayFloats("BAD", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayFloats invalid = %#v", got)
	}
	if got := c.MayFloats("MISSING", def); !reflect.DeepEqual(got, def) {
		t.Fatalf("MayFloats missing = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_OUT", "JSON")
	if got := c.MayEnum("OUT", "table", "table", "json", "yaml"); got != "json" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("NONE", "table", "table", "json"); got != "table" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "table", "table", "json") })
}
