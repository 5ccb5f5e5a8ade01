package http

import (
	"net/url"
	"strings"
)

// labelFromPath undoes the path-safe spelling of a label: 205-55R16-91V and 205_55_R16 read as 205/55R16 91V
func labelFromPath(raw string) string {
	s, err := url.PathUnescape(raw)
	if err != nil {
		s = raw
	}
	if strings.Contains(s, "/") {
		return s
	}
	w, rest, ok := strings.Cut(strings.NewReplacer("_", "-").Replace(s), "-")
	if !ok {
		return s
	}
	return w + "/" + strings.ReplaceAll(rest, "-", " ")
}
