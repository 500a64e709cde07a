package querycache

import (
	"net/url"
	"strings"
)

// Key identifies a cached query result as an ordered path of segments,
// e.g. {"logs", "daily", "2024-03-05"}. Keys compare structurally and
// invalidate by prefix: invalidating {"foods"} hits every key that starts
// with that segment.
type Key []string

// String renders the canonical form used as the cache map key. Segments
// are escaped so a segment containing "/" cannot collide with a longer
// path.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, seg := range k {
		parts[i] = url.PathEscape(seg)
	}
	return strings.Join(parts, "/")
}

func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether k starts with every segment of prefix. A key
// is a prefix of itself.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}
