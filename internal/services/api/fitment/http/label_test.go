package http

import "testing"

func TestLabelFromPath(t *testing.T) {
	cases := map[string]string{
		"205-55R16-91V": "205/55R16 91V",
		"205_55_R16":    "205/55 R16",
		"205-55-16":     "205/55 16",
		"205%2F55R16":   "205/55R16",
		"205 55 16":     "205 55 16",
		"20555R16":      "20555R16",
	}
	for in, want := range cases {
		if got := labelFromPath(in); got != want {
			t.Fatalf("labelFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
