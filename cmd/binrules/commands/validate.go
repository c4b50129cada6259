package commands

import (
	"github.com/dyluth/binrules/internal/printer"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate build.yml without resolving binaries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		binaries := 0
		for _, lib := range cfg.Libraries {
			binaries += len(lib.Binaries)
		}
		printer.Success("%s is valid (%d libraries, %d binaries)\n", configPath, len(cfg.Libraries), binaries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
