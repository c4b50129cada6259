package rules

import (
	"path/filepath"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/component"
	"github.com/dyluth/binrules/internal/layout"
)

// ClassDirectoryRules configures unpackaged class directory binaries.
// They share the classes layout of jar binaries but produce no archive.
type ClassDirectoryRules struct {
	Layout     layout.BuildLayout
	Toolchains ToolchainResolver
}

// Apply attaches the class directory defaults to lib's binaries
func (r *ClassDirectoryRules) Apply(lib *component.Library) {
	lib.Binaries().BeforeEach(binary.KindClasses, r.Configure)
}

// Configure applies class directory defaults to a single artifact
func (r *ClassDirectoryRules) Configure(a *binary.Artifact) error {
	outputDir := filepath.Join(r.Layout.ClassesDir(), a.Name())
	a.ClassesDir = outputDir
	a.ResourcesDir = outputDir

	return bindToolchain(a, r.Toolchains)
}
