// Package mediaurl rewrites raw media references from the backend into URLs
// the page origin can serve. The backend emits bare filenames, already-correct
// relative paths or absolute URLs that leaked a container-internal hostname,
// depending on how the deployment is wired; callers get one uniform shape.
package mediaurl

import (
	"net/url"
	"strings"
)

const mediaPrefix = "/media/"

// internal hostnames whose absolute URLs must be collapsed to /media/ paths
var internalHostMarkers = []string{"backend", "localhost", "127.0.0.1"}

// Rewriter rewrites media references relative to one public origin.
// A zero origin disables the same-origin passthrough rule only.
type Rewriter struct {
	origin *url.URL
}

// New builds a Rewriter for the given public origin, e.g. "https://pyo-glory.com".
// An unparseable origin is treated as absent; Rewrite still works.
func New(publicOrigin string) *Rewriter {
	origin, err := url.Parse(strings.TrimSpace(publicOrigin))
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return &Rewriter{}
	}
	return &Rewriter{origin: origin}
}

// Rewrite maps a raw media reference to a fetchable URL. Blank input yields
// "". Rewrite never fails: malformed input comes back unchanged.
func (r *Rewriter) Rewrite(raw string) string {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, mediaPrefix) {
		return ref
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		parsed, err := url.Parse(ref)
		if err != nil {
			return ref
		}
		if r.origin != nil && parsed.Scheme == r.origin.Scheme && parsed.Host == r.origin.Host {
			return parsed.String()
		}
		if strings.HasPrefix(parsed.Path, mediaPrefix) {
			return stripOrigin(parsed)
		}
		if isInternalHost(parsed.Hostname()) {
			return ensureMediaPath(parsed.Path)
		}
		return parsed.String()
	}

	// root-relative or bare filename: both end up under /media/
	return ensureMediaPath(ref)
}

// stripOrigin keeps path, query and fragment of an absolute URL.
func stripOrigin(u *url.URL) string {
	var b strings.Builder
	b.WriteString(u.Path)
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.Fragment)
	}
	return b.String()
}

func ensureMediaPath(path string) string {
	if strings.HasPrefix(path, mediaPrefix) {
		return path
	}
	return mediaPrefix + strings.TrimLeft(path, "/")
}

func isInternalHost(hostname string) bool {
	for _, marker := range internalHostMarkers {
		if strings.Contains(hostname, marker) {
			return true
		}
	}
	return false
}
