package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/binrules/internal/config"
	"github.com/dyluth/binrules/internal/printer"
)

//go:embed templates/*
var templatesFS embed.FS

// Initialize writes a starter build.yml into dir.
// If force is true, an existing build.yml is replaced.
func Initialize(dir string, force bool) error {
	path := filepath.Join(dir, config.DefaultFileName)

	if force {
		if err := handleForce(path); err != nil {
			return err
		}
	}

	content, err := templatesFS.ReadFile("templates/build.yml.tmpl")
	if err != nil {
		return fmt.Errorf("failed to read build.yml template: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// The template must load cleanly with the current schema
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not valid: %w", path, err)
	}

	return nil
}

// handleForce removes an existing build.yml if --force was specified
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		printer.Warning("Removing existing %s...\n", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess(dir string) {
	printer.Success("Initialized binrules project\n")
	printer.Println("\nCreated:")
	printer.Printf("  ✓ %s\n", filepath.Join(dir, config.DefaultFileName))
	printer.Println("\nNext steps:")
	printer.Println("  1. Declare your libraries and their binaries in build.yml")
	printer.Println("  2. Add a toolchain for every platform you target")
	printer.Println("  3. Run 'binrules resolve' to see where each binary will be written")
}
