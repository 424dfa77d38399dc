package querycache

import "strings"

// keySep joins key components for map addressing. The unit separator cannot
// occur in normal identifiers.
const keySep = "\x1f"

// Key identifies one cacheable read as an ordered tuple of components, e.g.
// K("matter", customerID, matterID).
type Key []string

// K builds a Key from its components.
func K(parts ...string) Key { return Key(parts) }

// String renders the key for map addressing.
func (k Key) String() string { return strings.Join(k, keySep) }

// HasPrefix reports whether k starts with every component of prefix, so
// K("matters", "c1") is matched by both K("matters") and K("matters", "c1").
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, p := range prefix {
		if k[i] != p {
			return false
		}
	}
	return true
}
