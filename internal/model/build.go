package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/component"
	"github.com/dyluth/binrules/internal/layout"
	"github.com/dyluth/binrules/internal/toolchain"
	"github.com/google/uuid"
)

// ErrFinalized is returned when declaring into a finalized build
var ErrFinalized = errors.New("build model is finalized")

// Rule configures a library as soon as it is declared
type Rule interface {
	Apply(lib *component.Library)
}

// Build is the component model for one build invocation
type Build struct {
	id         uuid.UUID
	layout     layout.BuildLayout
	toolchains *toolchain.Registry
	rules      []Rule
	libraries  []*component.Library
	finalized  bool
	verbose    bool
}

// NewBuild creates an empty model with a fresh invocation ID
func NewBuild(l layout.BuildLayout, toolchains *toolchain.Registry) *Build {
	return &Build{
		id:         uuid.New(),
		layout:     l,
		toolchains: toolchains,
	}
}

// SetVerbose enables [DEBUG] logging
func (b *Build) SetVerbose(v bool) {
	b.verbose = v
}

// ID returns the invocation ID
func (b *Build) ID() uuid.UUID { return b.id }

// Layout returns the build layout
func (b *Build) Layout() layout.BuildLayout { return b.layout }

// Toolchains returns the toolchain registry
func (b *Build) Toolchains() *toolchain.Registry { return b.toolchains }

// AddRule registers a rule applied to every library declared afterwards
func (b *Build) AddRule(r Rule) {
	b.rules = append(b.rules, r)
}

// DeclareLibrary creates a library and applies every registered rule to it
func (b *Build) DeclareLibrary(name string) (*component.Library, error) {
	if b.finalized {
		return nil, fmt.Errorf("cannot declare library '%s': %w", name, ErrFinalized)
	}
	if _, exists := b.Library(name); exists {
		return nil, fmt.Errorf("duplicate library '%s'", name)
	}

	lib, err := component.NewLibrary(name)
	if err != nil {
		return nil, err
	}

	for _, r := range b.rules {
		r.Apply(lib)
	}
	b.libraries = append(b.libraries, lib)

	b.debugf("Declared library '%s' with %d rule(s)", name, len(b.rules))
	return lib, nil
}

// Library looks up a declared library by name
func (b *Build) Library(name string) (*component.Library, bool) {
	for _, lib := range b.libraries {
		if lib.Name() == name {
			return lib, true
		}
	}
	return nil, false
}

// Libraries returns declared libraries in declaration order
func (b *Build) Libraries() []*component.Library {
	out := make([]*component.Library, len(b.libraries))
	copy(out, b.libraries)
	return out
}

// Finalize seals every binary collection and checks that each registered
// binary is fully configured. It is safe to call more than once.
func (b *Build) Finalize() error {
	var errs []error
	for _, lib := range b.libraries {
		lib.Binaries().Seal()
		for _, a := range lib.Binaries().All() {
			if err := a.CheckConfigured(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	b.finalized = true

	if err := errors.Join(errs...); err != nil {
		return err
	}
	b.debugf("Build %s finalized with %d binaries", b.id, len(b.Binaries()))
	return nil
}

// Finalized reports whether Finalize has been called
func (b *Build) Finalized() bool {
	return b.finalized
}

// Binaries returns every registered binary, grouped by library in
// declaration order.
func (b *Build) Binaries() []*binary.Artifact {
	var out []*binary.Artifact
	for _, lib := range b.libraries {
		out = append(out, lib.Binaries().All()...)
	}
	return out
}

func (b *Build) debugf(format string, args ...any) {
	if b.verbose {
		log.Printf("[DEBUG] "+format, args...)
	}
}
