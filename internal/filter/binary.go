package filter

import (
	"path/filepath"

	"github.com/dyluth/binrules/internal/binary"
)

// Criteria defines filtering criteria for resolved binaries.
// All filters are ANDed together - a binary must match ALL criteria to pass.
type Criteria struct {
	Library      string // Exact match on library name, empty = no filter
	KindGlob     string // Glob pattern for kind name, empty = no filter
	PlatformGlob string // Glob pattern for target platform, empty = no filter
}

// Matches returns true if the binary matches all filter criteria.
// Empty criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(a *binary.Artifact) bool {
	if c.Library != "" && a.LibraryName() != c.Library {
		return false
	}

	if c.KindGlob != "" {
		matched, err := filepath.Match(c.KindGlob, a.Kind().String())
		if err != nil || !matched {
			return false
		}
	}

	if c.PlatformGlob != "" {
		matched, err := filepath.Match(c.PlatformGlob, a.TargetPlatform().Name)
		if err != nil || !matched {
			return false
		}
	}

	return true
}

// HasFilters returns true if any filters are active
func (c *Criteria) HasFilters() bool {
	return c.Library != "" || c.KindGlob != "" || c.PlatformGlob != ""
}

// Apply returns the binaries matching the criteria, preserving order
func (c *Criteria) Apply(binaries []*binary.Artifact) []*binary.Artifact {
	if !c.HasFilters() {
		return binaries
	}
	var out []*binary.Artifact
	for _, a := range binaries {
		if c.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
