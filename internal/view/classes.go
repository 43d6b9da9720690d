package view

import "strings"

// Classes joins the non-empty class names with single spaces.
func Classes(xs ...string) string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return strings.Join(out, " ")
}
