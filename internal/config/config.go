package config

import (
	"fmt"
	"os"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/toolchain"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the config file looked up when none is given
	DefaultFileName = "build.yml"

	// DefaultBuildDir is used when build_dir is omitted
	DefaultBuildDir = "build"
)

// BuildConfig represents the top-level build.yml configuration
type BuildConfig struct {
	Version         string             `yaml:"version"`
	BuildDir        string             `yaml:"build_dir,omitempty"`        // Relative to the config file, default "build"
	DefaultPlatform string             `yaml:"default_platform,omitempty"` // Used by binaries without a platform
	Toolchains      []ToolchainConfig  `yaml:"toolchains,omitempty"`       // Resolution order is file order
	Libraries       map[string]Library `yaml:"libraries"`
}

// ToolchainConfig declares a JDK available to the build
type ToolchainConfig struct {
	Name        string `yaml:"name"`
	JavaVersion int    `yaml:"java_version"`
	Home        string `yaml:"home,omitempty"`
}

// Library declares a JVM library and its binaries
type Library struct {
	Binaries []Binary `yaml:"binaries"`
}

// Binary declares one binary of a library
type Binary struct {
	Name      string           `yaml:"name"`
	Kind      string           `yaml:"kind,omitempty"`     // "jar" (default) or "classes"
	Platform  string           `yaml:"platform,omitempty"` // Defaults to default_platform
	Overrides *OverridesConfig `yaml:"overrides,omitempty"`
}

// OverridesConfig replaces conventional values after defaults are applied.
// Relative paths are resolved against the build directory.
type OverridesConfig struct {
	ClassesDir   string `yaml:"classes_dir,omitempty"`
	ResourcesDir string `yaml:"resources_dir,omitempty"`
	JarFile      string `yaml:"jar_file,omitempty"`
	APIJarFile   string `yaml:"api_jar_file,omitempty"`
}

// IsEmpty reports whether no override is set
func (o *OverridesConfig) IsEmpty() bool {
	return o == nil || (o.ClassesDir == "" && o.ResourcesDir == "" && o.JarFile == "" && o.APIJarFile == "")
}

// Validate performs strict validation on the configuration and fills in defaults
func (c *BuildConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: at least one library
	if len(c.Libraries) == 0 {
		return fmt.Errorf("no libraries defined")
	}

	if c.BuildDir == "" {
		c.BuildDir = DefaultBuildDir
	}

	if c.DefaultPlatform != "" {
		if _, err := toolchain.ParsePlatform(c.DefaultPlatform); err != nil {
			return fmt.Errorf("default_platform: %w", err)
		}
	}

	namesSeen := make(map[string]struct{})
	for i := range c.Toolchains {
		tc := &c.Toolchains[i]
		if err := tc.Validate(i); err != nil {
			return err
		}
		if _, exists := namesSeen[tc.Name]; exists {
			return fmt.Errorf("duplicate toolchain name '%s'", tc.Name)
		}
		namesSeen[tc.Name] = struct{}{}
	}

	for name, lib := range c.Libraries {
		if err := lib.Validate(name, c.DefaultPlatform); err != nil {
			return err
		}
		c.Libraries[name] = lib
	}

	return nil
}

// Validate performs validation on a single toolchain entry
func (t *ToolchainConfig) Validate(index int) error {
	if t.Name == "" {
		return fmt.Errorf("toolchain %d: name is required", index)
	}
	if t.JavaVersion < 1 {
		return fmt.Errorf("toolchain '%s': java_version must be >= 1, got %d", t.Name, t.JavaVersion)
	}
	return nil
}

// Validate performs validation on a library and applies binary defaults
func (l *Library) Validate(name, defaultPlatform string) error {
	if err := binary.ValidateLibraryName(name); err != nil {
		return err
	}

	if len(l.Binaries) == 0 {
		return fmt.Errorf("library '%s': no binaries defined", name)
	}

	binariesSeen := make(map[string]struct{})
	for i := range l.Binaries {
		b := &l.Binaries[i]

		if err := binary.ValidateName(b.Name); err != nil {
			return fmt.Errorf("library '%s': %w", name, err)
		}
		if _, exists := binariesSeen[b.Name]; exists {
			return fmt.Errorf("library '%s': duplicate binary '%s'", name, b.Name)
		}
		binariesSeen[b.Name] = struct{}{}

		if b.Kind == "" {
			b.Kind = binary.KindJar.String()
		}
		if _, err := binary.ParseKind(b.Kind); err != nil {
			return fmt.Errorf("library '%s' binary '%s': %w", name, b.Name, err)
		}

		if b.Platform == "" {
			b.Platform = defaultPlatform
		}
		if b.Platform == "" {
			return fmt.Errorf("library '%s' binary '%s': platform is required (or set default_platform)", name, b.Name)
		}
		if _, err := toolchain.ParsePlatform(b.Platform); err != nil {
			return fmt.Errorf("library '%s' binary '%s': %w", name, b.Name, err)
		}

		if b.Kind == binary.KindClasses.String() && b.Overrides != nil {
			if b.Overrides.JarFile != "" || b.Overrides.APIJarFile != "" {
				return fmt.Errorf("library '%s' binary '%s': jar overrides are not valid for classes binaries", name, b.Name)
			}
		}
	}

	return nil
}

// Load reads and validates build.yml from the specified path
func Load(path string) (*BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BuildConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
