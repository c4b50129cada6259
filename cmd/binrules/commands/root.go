package commands

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/dyluth/binrules/internal/config"
	"github.com/dyluth/binrules/internal/printer"
	"github.com/dyluth/binrules/internal/project"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binrules",
	Short: "binrules - conventional output layout for JVM library binaries",
	Long: `binrules resolves the conventional configuration of every jar binary
declared in build.yml: its classes and resources directories, its jar and
API jar paths, and the JDK toolchain that can build it.

Defaults are applied first; per-binary overrides in build.yml are applied
on top of them.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printer.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		log.SetOutput(cmd.ErrOrStderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "file", "f", config.DefaultFileName, "Path to build configuration")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// loadConfig loads the configuration named by --file, printing a formatted
// error on failure
func loadConfig() (*config.BuildConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"Failed to load build configuration",
			err.Error(),
			map[string]string{"Config": configPath},
			[]string{"Check the file exists and passes 'binrules validate'"},
		)
	}
	if verbose {
		log.Printf("[INFO] Loaded %s (%d libraries, %d toolchains)", configPath, len(cfg.Libraries), len(cfg.Toolchains))
	}
	return cfg, nil
}

// resolveProject loads the configuration and resolves it into a build model
func resolveProject() (*project.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	result, err := project.Resolve(cfg, project.Options{
		BaseDir: filepath.Dir(configPath),
		Verbose: verbose,
	})
	if err != nil {
		return nil, printer.Error("Failed to resolve build", err.Error(), nil)
	}
	return result, nil
}
