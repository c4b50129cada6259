package toolchain

import (
	"errors"
	"fmt"
)

// ErrNoToolchain is the kind of every ResolutionError
var ErrNoToolchain = errors.New("no toolchain supports platform")

// ResolutionError reports that no registered toolchain supports a platform.
type ResolutionError struct {
	Platform Platform
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s '%s'", ErrNoToolchain.Error(), e.Platform.Name)
}

func (e *ResolutionError) Unwrap() error { return ErrNoToolchain }

// Toolchain is the set of tools used to compile and package for a platform.
type Toolchain interface {
	Name() string
	Supports(p Platform) bool
}

// JDK is a toolchain backed by a Java installation. It can target any
// platform whose version does not exceed its own.
type JDK struct {
	ID      string
	Version int
	Home    string
}

// Name returns the toolchain name
func (j *JDK) Name() string {
	return j.ID
}

// Supports reports whether the JDK can compile for p
func (j *JDK) Supports(p Platform) bool {
	return p.TargetVersion >= 1 && p.TargetVersion <= j.Version
}

// Registry maps platforms to toolchains. Lookups walk toolchains in
// registration order and return the first that supports the platform.
type Registry struct {
	toolchains []Toolchain
	names      map[string]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register adds a toolchain. Names must be unique.
func (r *Registry) Register(tc Toolchain) error {
	if tc == nil {
		return fmt.Errorf("toolchain cannot be nil")
	}
	if tc.Name() == "" {
		return fmt.Errorf("toolchain name cannot be empty")
	}
	if _, exists := r.names[tc.Name()]; exists {
		return fmt.Errorf("duplicate toolchain '%s'", tc.Name())
	}

	r.names[tc.Name()] = struct{}{}
	r.toolchains = append(r.toolchains, tc)
	return nil
}

// Resolve returns the first registered toolchain supporting p, or a
// *ResolutionError naming p.
func (r *Registry) Resolve(p Platform) (Toolchain, error) {
	for _, tc := range r.toolchains {
		if tc.Supports(p) {
			return tc, nil
		}
	}
	return nil, &ResolutionError{Platform: p}
}

// Toolchains returns the registered toolchains in registration order
func (r *Registry) Toolchains() []Toolchain {
	out := make([]Toolchain, len(r.toolchains))
	copy(out, r.toolchains)
	return out
}
