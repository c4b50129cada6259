package binary

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dyluth/binrules/internal/toolchain"
)

// ID identifies a binary within a build
type ID struct {
	Name        string
	LibraryName string
}

// String returns library:name
func (id ID) String() string {
	return id.LibraryName + ":" + id.Name
}

// Artifact describes one binary output of a library.
// The identity is fixed at creation; the remaining fields are written by
// defaults rules and then by any override callbacks.
type Artifact struct {
	id             ID
	kind           Kind
	targetPlatform toolchain.Platform

	ClassesDir   string
	ResourcesDir string
	JarFile      string
	APIJarFile   string
	Toolchain    toolchain.Toolchain
}

// NewArtifact creates an unconfigured artifact
func NewArtifact(id ID, kind Kind, platform toolchain.Platform) (*Artifact, error) {
	if err := ValidateName(id.Name); err != nil {
		return nil, err
	}
	if err := ValidateLibraryName(id.LibraryName); err != nil {
		return nil, fmt.Errorf("binary '%s': %w", id.Name, err)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("binary '%s': invalid kind %s", id.Name, kind)
	}

	return &Artifact{id: id, kind: kind, targetPlatform: platform}, nil
}

// ValidateName checks that a binary name can be used as a single directory segment
func ValidateName(name string) error {
	return validateSegment("binary", name)
}

// ValidateLibraryName checks that a library name can be used as a single
// file name segment
func ValidateLibraryName(name string) error {
	return validateSegment("library", name)
}

func validateSegment(what, name string) error {
	if name == "" {
		return fmt.Errorf("%s name cannot be empty", what)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid %s name '%s'", what, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid %s name '%s': must not contain path separators", what, name)
	}
	return nil
}

// ID returns the binary's identity
func (a *Artifact) ID() ID { return a.id }

// Name returns the binary name
func (a *Artifact) Name() string { return a.id.Name }

// LibraryName returns the name of the owning library
func (a *Artifact) LibraryName() string { return a.id.LibraryName }

// Kind returns the binary kind
func (a *Artifact) Kind() Kind { return a.kind }

// TargetPlatform returns the platform the binary is built for
func (a *Artifact) TargetPlatform() toolchain.Platform { return a.targetPlatform }

// CheckConfigured verifies that every conventional field has been set.
// Downstream steps call it before reading the artifact.
func (a *Artifact) CheckConfigured() error {
	var missing []string
	if a.ClassesDir == "" {
		missing = append(missing, "classes_dir")
	}
	if a.ResourcesDir == "" {
		missing = append(missing, "resources_dir")
	}
	if a.kind == KindJar {
		if a.JarFile == "" {
			missing = append(missing, "jar_file")
		}
		if a.APIJarFile == "" {
			missing = append(missing, "api_jar_file")
		}
	}
	if a.Toolchain == nil {
		missing = append(missing, "toolchain")
	}

	if len(missing) > 0 {
		return fmt.Errorf("binary '%s' is not configured: missing %s", a.id, strings.Join(missing, ", "))
	}
	return nil
}
