// Package project assembles a finalized build model from build.yml.
package project

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/component"
	"github.com/dyluth/binrules/internal/config"
	"github.com/dyluth/binrules/internal/layout"
	"github.com/dyluth/binrules/internal/model"
	"github.com/dyluth/binrules/internal/rules"
	"github.com/dyluth/binrules/internal/toolchain"
)

// Options controls project assembly
type Options struct {
	BaseDir string // Directory build_dir is resolved against
	Verbose bool
}

// Result is the outcome of resolving a project. Build is always set once
// layout and toolchains are valid; Errors lists the binaries that failed
// to configure.
type Result struct {
	Build  *model.Build
	Errors []error
}

// Err joins every binary failure, or returns nil
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// NewRegistry builds a toolchain registry from configuration, in file order
func NewRegistry(cfg *config.BuildConfig) (*toolchain.Registry, error) {
	reg := toolchain.NewRegistry()
	for _, tc := range cfg.Toolchains {
		if err := reg.Register(&toolchain.JDK{ID: tc.Name, Version: tc.JavaVersion, Home: tc.Home}); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Resolve declares every library and binary from cfg against a fresh build
// model, runs the defaults rules and user overrides, and finalizes it.
//
// Libraries are declared in name order and binaries in file order. A binary
// whose configuration fails is recorded in Result.Errors and left out of
// the model; the rest are still resolved.
func Resolve(cfg *config.BuildConfig, opts Options) (*Result, error) {
	buildDir := cfg.BuildDir
	if !filepath.IsAbs(buildDir) && opts.BaseDir != "" {
		buildDir = filepath.Join(opts.BaseDir, buildDir)
	}

	l, err := layout.New(buildDir)
	if err != nil {
		return nil, err
	}

	reg, err := NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	build := model.NewBuild(l, reg)
	build.SetVerbose(opts.Verbose)
	build.AddRule(&rules.JarBinaryRules{Layout: l, Toolchains: reg})
	build.AddRule(&rules.ClassDirectoryRules{Layout: l, Toolchains: reg})

	if opts.Verbose {
		log.Printf("[INFO] Resolving build %s in %s", build.ID(), l.RootDir())
	}

	names := make([]string, 0, len(cfg.Libraries))
	for name := range cfg.Libraries {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{Build: build}
	for _, name := range names {
		lib, err := build.DeclareLibrary(name)
		if err != nil {
			return nil, err
		}

		for _, b := range cfg.Libraries[name].Binaries {
			if err := declareBinary(lib, b, l); err != nil {
				if opts.Verbose {
					log.Printf("[ERROR] %v", err)
				}
				result.Errors = append(result.Errors, err)
			}
		}
	}

	if err := build.Finalize(); err != nil {
		return nil, fmt.Errorf("failed to finalize build: %w", err)
	}

	return result, nil
}

func declareBinary(lib *component.Library, b config.Binary, l layout.BuildLayout) error {
	kind, err := binary.ParseKind(b.Kind)
	if err != nil {
		return err
	}
	platform, err := toolchain.ParsePlatform(b.Platform)
	if err != nil {
		return err
	}

	if !b.Overrides.IsEmpty() {
		if err := lib.Binaries().WithType(kind, overrideCallback(b.Name, *b.Overrides, l)); err != nil {
			return err
		}
	}

	_, err = lib.DeclareBinary(b.Name, kind, platform)
	return err
}

// overrideCallback applies user overrides to the named binary only. It is
// registered in the override phase so the conventional values are already
// in place when it runs.
func overrideCallback(name string, o config.OverridesConfig, l layout.BuildLayout) binary.Callback {
	return func(a *binary.Artifact) error {
		if a.Name() != name {
			return nil
		}
		if o.ClassesDir != "" {
			a.ClassesDir = resolvePath(l, o.ClassesDir)
		}
		if o.ResourcesDir != "" {
			a.ResourcesDir = resolvePath(l, o.ResourcesDir)
		}
		if o.JarFile != "" {
			a.JarFile = resolvePath(l, o.JarFile)
		}
		if o.APIJarFile != "" {
			a.APIJarFile = resolvePath(l, o.APIJarFile)
		}
		return nil
	}
}

func resolvePath(l layout.BuildLayout, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(l.RootDir(), p)
}
