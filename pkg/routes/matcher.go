package routes

import (
	"net/url"
	"path"
	"strings"
)

// Matcher classifies in-app paths as protected or public. Patterns are
// slash-separated literals with an optional trailing "*" segment that
// matches the rest of the path, including nothing: "/dashboard/*" matches
// "/dashboard", "/dashboard/campaigns" and "/dashboard/a/b".
//
// A path matching neither list is treated as neither protected nor public;
// the session loader only acts on the two explicit classes.
type Matcher struct {
	protected []string
	public    []string
}

// NewMatcher builds a matcher from protected and public pattern lists.
// Empty and duplicate patterns are kept as-is; matching is linear over the
// handful of patterns a dashboard realistically has.
func NewMatcher(protected, public []string) *Matcher {
	return &Matcher{protected: protected, public: public}
}

// IsProtected reports whether the path (query string ignored) matches any
// protected pattern.
func (m *Matcher) IsProtected(p string) bool {
	return matchAny(m.protected, p)
}

// IsPublic reports whether the path (query string ignored) matches any
// public pattern.
func (m *Matcher) IsPublic(p string) bool {
	return matchAny(m.public, p)
}

// NextTarget extracts the "next" query parameter from the current location
// and returns it if it names a protected in-app path, otherwise fallback.
// Only absolute in-app paths are accepted, which keeps externally supplied
// locations from turning into open redirects.
func (m *Matcher) NextTarget(location, fallback string) string {
	u, err := url.Parse(location)
	if err != nil {
		return fallback
	}
	next := u.Query().Get("next")
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	if !m.IsProtected(next) {
		return fallback
	}
	return next
}

func matchAny(patterns []string, p string) bool {
	p = normalize(p)
	for _, pattern := range patterns {
		if match(pattern, p) {
			return true
		}
	}
	return false
}

// match compares one cleaned path against one pattern segment-by-segment.
func match(pattern, p string) bool {
	pattern = normalize(pattern)
	if pattern == p {
		return true
	}

	patSegs := split(pattern)
	pathSegs := split(p)

	for i, seg := range patSegs {
		if seg == "*" && i == len(patSegs)-1 {
			// Trailing wildcard swallows the rest, including nothing.
			return true
		}
		if i >= len(pathSegs) || pathSegs[i] != seg {
			return false
		}
	}

	return len(pathSegs) == len(patSegs)
}

func normalize(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
