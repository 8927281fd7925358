// file: handler/route_classifier.go

package handler

import "strings"

// RouteClassifier decides whether a request path may skip
// authentication. Matching is by exact path segments: a configured
// prefix matches the identical path or any path nested under it.
// Plain substring containment would let a protected route whose text
// merely contains a public marker slip through the gate.
type RouteClassifier struct {
	publicPrefixes []string
}

func NewRouteClassifier(publicPrefixes []string) *RouteClassifier {
	cleaned := make([]string, 0, len(publicPrefixes))
	for _, p := range publicPrefixes {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &RouteClassifier{publicPrefixes: cleaned}
}

// IsPublic reports whether the path is reachable without credentials.
func (c *RouteClassifier) IsPublic(path string) bool {
	path = strings.TrimRight(path, "/")
	for _, prefix := range c.publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
