package normalize

import (
	"net/url"
	"strings"
)

// NormalizeURL makes an image source absolute. Scheme-relative sources get the
// origin's scheme, root-relative ones get the whole origin, anything else is
// returned unchanged.
func NormalizeURL(src, origin string) string {
	src = strings.TrimSpace(src)
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")

	switch {
	case src == "":
		return ""
	case strings.HasPrefix(src, "//"):
		return schemeOf(origin) + ":" + src
	case strings.HasPrefix(src, "/"):
		return origin + src
	}
	return src
}

func schemeOf(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" {
		return "https"
	}
	return u.Scheme
}
