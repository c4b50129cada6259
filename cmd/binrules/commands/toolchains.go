package commands

import (
	"strconv"

	"github.com/dyluth/binrules/internal/printer"
	"github.com/dyluth/binrules/internal/toolchain"
	"github.com/spf13/cobra"
)

var toolchainsCmd = &cobra.Command{
	Use:   "toolchains",
	Short: "List configured toolchains and the binaries bound to each",
	Long: `List the toolchains declared in build.yml in resolution order.

Each binary is bound to the first toolchain whose java_version is at least
the binary's platform version.`,
	Args: cobra.NoArgs,
	RunE: runToolchains,
}

func init() {
	rootCmd.AddCommand(toolchainsCmd)
}

func runToolchains(cmd *cobra.Command, args []string) error {
	result, err := resolveProject()
	if err != nil {
		return err
	}

	tcs := result.Build.Toolchains().Toolchains()
	if len(tcs) == 0 {
		printer.Warning("No toolchains configured - every binary will fail to resolve\n")
		return nil
	}

	// Binary IDs bound to each toolchain, in declaration order
	bound := make(map[string][]string)
	for _, a := range result.Build.Binaries() {
		bound[a.Toolchain.Name()] = append(bound[a.Toolchain.Name()], a.ID().String())
	}

	printer.Printf("%-12s %-8s %s\n", "TOOLCHAIN", "VERSION", "HOME")
	for _, tc := range tcs {
		version, home := "-", "-"
		if jdk, ok := tc.(*toolchain.JDK); ok {
			version = strconv.Itoa(jdk.Version)
			if jdk.Home != "" {
				home = jdk.Home
			}
		}
		printer.Printf("%-12s %-8s %s\n", tc.Name(), version, home)
		for _, id := range bound[tc.Name()] {
			printer.Muted("  %s\n", id)
		}
	}

	for _, e := range result.Errors {
		printer.Warning("%s\n", e.Error())
	}
	return nil
}
