// Package rules holds the defaults rules that give binaries their
// conventional output locations and toolchain before user configuration
// is applied.
package rules

import (
	"path/filepath"
	"strings"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/component"
	"github.com/dyluth/binrules/internal/layout"
	"github.com/dyluth/binrules/internal/toolchain"
)

const (
	// JarMarker names the normal-archive role inside a binary name
	JarMarker = "Jar"

	// APIJarMarker replaces JarMarker to name the API-only archive
	APIJarMarker = "ApiJar"

	jarExtension = ".jar"
)

// ToolchainResolver finds the toolchain for a platform
type ToolchainResolver interface {
	Resolve(p toolchain.Platform) (toolchain.Toolchain, error)
}

// JarBinaryRules stamps conventional paths and a toolchain onto every jar
// binary of a library, ahead of any other callback on the collection.
type JarBinaryRules struct {
	Layout     layout.BuildLayout
	Toolchains ToolchainResolver
}

// Apply attaches the jar defaults to lib's binaries
func (r *JarBinaryRules) Apply(lib *component.Library) {
	lib.Binaries().BeforeEach(binary.KindJar, r.Configure)
}

// Configure applies jar defaults to a single artifact
func (r *JarBinaryRules) Configure(a *binary.Artifact) error {
	return ConfigureJar(a, r.Layout, r.Toolchains)
}

// ConfigureJar writes the conventional fields of a jar binary:
//
//	classes and resources  root/classes/<name>
//	jar                    root/jars/<name>/<library>.jar
//	api jar                root/jars/<APIVariantName(name)>/<library>.jar
//
// Paths are written before the toolchain is resolved, so a resolution
// failure leaves them set and only the toolchain unbound.
func ConfigureJar(a *binary.Artifact, l layout.BuildLayout, toolchains ToolchainResolver) error {
	jarName := a.LibraryName() + jarExtension

	outputDir := filepath.Join(l.ClassesDir(), a.Name())
	a.ClassesDir = outputDir
	a.ResourcesDir = outputDir
	a.JarFile = filepath.Join(l.JarsDir(), a.Name(), jarName)
	a.APIJarFile = filepath.Join(l.JarsDir(), APIVariantName(a.Name()), jarName)

	return bindToolchain(a, toolchains)
}

// APIVariantName replaces the first occurrence of JarMarker in name with
// APIJarMarker. Names without the marker are returned unchanged.
func APIVariantName(name string) string {
	return strings.Replace(name, JarMarker, APIJarMarker, 1)
}

func bindToolchain(a *binary.Artifact, toolchains ToolchainResolver) error {
	tc, err := toolchains.Resolve(a.TargetPlatform())
	if err != nil {
		return err
	}
	a.Toolchain = tc
	return nil
}
