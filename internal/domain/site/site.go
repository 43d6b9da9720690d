package site

import (
	"net/url"
	"strings"
)

const DefaultBase = "/3zk9.io/"

// NormalizeBase turns "x", "/x" or "x/" into "/x/". Empty input means DefaultBase.
func NormalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return DefaultBase
	}
	trimmed := strings.Trim(base, "/")
	if trimmed == "" {
		return "/"
	}
	return "/" + trimmed + "/"
}

// Asset resolves a site-absolute path such as "/resume.pdf" against base.
// Fragments, protocol-relative URLs and anything carrying a scheme pass through untouched.
func Asset(base, path string) string {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return path
	}
	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return path
	}
	return NormalizeBase(base) + strings.TrimPrefix(path, "/")
}
