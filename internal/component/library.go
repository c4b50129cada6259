package component

import (
	"fmt"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/toolchain"
)

// Library is a JVM library component and the binaries it declares
type Library struct {
	name     string
	binaries *binary.Collection
}

// NewLibrary creates a library with an empty binary collection
func NewLibrary(name string) (*Library, error) {
	if err := binary.ValidateLibraryName(name); err != nil {
		return nil, err
	}
	return &Library{name: name, binaries: binary.NewCollection()}, nil
}

// Name returns the library name
func (l *Library) Name() string {
	return l.name
}

// Binaries returns the library's binary collection
func (l *Library) Binaries() *binary.Collection {
	return l.binaries
}

// DeclareBinary creates a binary owned by this library and registers it,
// which runs every configuration callback attached to the collection.
// The artifact is returned even when registration fails so callers can
// inspect what the callbacks wrote.
func (l *Library) DeclareBinary(name string, kind binary.Kind, platform toolchain.Platform) (*binary.Artifact, error) {
	a, err := binary.NewArtifact(binary.ID{Name: name, LibraryName: l.name}, kind, platform)
	if err != nil {
		return nil, fmt.Errorf("library '%s': %w", l.name, err)
	}

	if err := l.binaries.Add(a); err != nil {
		return a, fmt.Errorf("library '%s': %w", l.name, err)
	}
	return a, nil
}
