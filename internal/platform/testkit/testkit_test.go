package testkit

import (
	"os"
	"strings"
	"testing"
)

var seam = func(a, b int) int { return a + b }

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "205/55 R16 91V", "R16")
	MustContain(t, strings.Repeat("x", 1024)+"needle", "needle")
}

func TestSwap_Restores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func(int, int) int { return 99 })
		if got := seam(1, 2); got != 99 {
			t.Fatalf("swap did not take effect, got %d", got)
		}
	})
	if got := seam(1, 2); got != 3 {
		t.Fatalf("swap did not restore, got %d", got)
	}
}

func TestEnv(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		Env(t, map[string]string{"TK_A": "1", "TK_B": "two"})
		if os.Getenv("TK_A") != "1" || os.Getenv("TK_B") != "two" {
			t.Fatalf("Env did not set values")
		}
	})
	if _, ok := os.LookupEnv("TK_A"); ok {
		t.Fatalf("Env did not restore TK_A")
	}
}
