package partialingress

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// Hash8 returns the first 8 hex characters of SHA-256("hostname:class"),
// used to give replicated ingresses a deterministic, collision-resistant
// name suffix.
func Hash8(hostname, class string) string {
	sum := sha256.Sum256([]byte(hostname + ":" + class))
	return hex.EncodeToString(sum[:])[:8]
}

// MatchesHostPattern reports whether hostname matches pattern using
// shell-glob (fnmatch) semantics. No glob-matching library appears
// anywhere in the example pack (searched for "fnmatch" and "glob" import
// paths); filepath.Match implements the same `*`, `?`, `[...]` class of
// patterns as Python's fnmatch for the single-segment hostnames this
// compares, so it is used directly rather than hand-rolling a matcher —
// see DESIGN.md for why this is the one place this repository reaches for
// the standard library over a third-party match.
func MatchesHostPattern(pattern, hostname string) bool {
	ok, err := filepath.Match(pattern, hostname)
	if err != nil {
		return false
	}
	return ok
}
