package commands

import (
	"fmt"
	"path/filepath"

	"github.com/dyluth/binrules/internal/config"
	"github.com/dyluth/binrules/internal/printer"
	"github.com/dyluth/binrules/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter build.yml",
	Long: `Create a starter build.yml declaring one example library with a jar binary
and a Java 8 toolchain.

Use --force to replace an existing build.yml (WARNING: destroys existing configuration).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Replace an existing build.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if !forceInit {
		if err := scaffold.CheckExisting(dir); err != nil {
			return printer.Error("Project already initialized", err.Error(), nil)
		}
	}

	printer.Step("Writing %s\n", filepath.Join(dir, config.DefaultFileName))
	if err := scaffold.Initialize(dir, forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess(dir)
	return nil
}
