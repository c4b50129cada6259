package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/filter"
	"github.com/dyluth/binrules/internal/printer"
	"github.com/dyluth/binrules/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	resolveJSON     bool
	resolveLibrary  string
	resolveKind     string
	resolvePlatform string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the resolved layout and toolchain of each binary",
	Long: `Resolve every binary declared in build.yml and print its configuration:

  • Classes and resources directories
  • Jar and API jar paths (jar binaries only)
  • Bound toolchain

Binaries whose platform no toolchain supports are reported as errors;
the remaining binaries are still printed.

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	resolveCmd.Flags().StringVar(&resolveLibrary, "library", "", "Only show binaries of this library")
	resolveCmd.Flags().StringVar(&resolveKind, "kind", "", "Only show binaries whose kind matches this glob")
	resolveCmd.Flags().StringVar(&resolvePlatform, "platform", "", "Only show binaries whose platform matches this glob")
	rootCmd.AddCommand(resolveCmd)
}

// BinaryInfo is the resolved view of one binary
type BinaryInfo struct {
	Library      string `json:"library"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Platform     string `json:"platform"`
	Toolchain    string `json:"toolchain"`
	ClassesDir   string `json:"classes_dir"`
	ResourcesDir string `json:"resources_dir"`
	JarFile      string `json:"jar_file,omitempty"`
	APIJarFile   string `json:"api_jar_file,omitempty"`
}

// ResolveOutput is the JSON document printed by resolve --json
type ResolveOutput struct {
	BuildID  string       `json:"build_id"`
	RootDir  string       `json:"root_dir"`
	Binaries []BinaryInfo `json:"binaries"`
	Errors   []string     `json:"errors,omitempty"`
}

func newBinaryInfo(a *binary.Artifact) BinaryInfo {
	info := BinaryInfo{
		Library:      a.LibraryName(),
		Name:         a.Name(),
		Kind:         a.Kind().String(),
		Platform:     a.TargetPlatform().Name,
		ClassesDir:   a.ClassesDir,
		ResourcesDir: a.ResourcesDir,
		JarFile:      a.JarFile,
		APIJarFile:   a.APIJarFile,
	}
	if a.Toolchain != nil {
		info.Toolchain = a.Toolchain.Name()
	}
	return info
}

func runResolve(cmd *cobra.Command, args []string) error {
	result, err := resolveProject()
	if err != nil {
		return err
	}

	criteria := &filter.Criteria{
		Library:      resolveLibrary,
		KindGlob:     resolveKind,
		PlatformGlob: resolvePlatform,
	}
	binaries := criteria.Apply(result.Build.Binaries())

	infos := make([]BinaryInfo, 0, len(binaries))
	for _, a := range binaries {
		infos = append(infos, newBinaryInfo(a))
	}

	if resolveJSON {
		output := ResolveOutput{
			BuildID:  result.Build.ID().String(),
			RootDir:  result.Build.Layout().RootDir(),
			Binaries: infos,
		}
		for _, e := range result.Errors {
			output.Errors = append(output.Errors, e.Error())
		}
		if err := outputJSON(output); err != nil {
			return err
		}
	} else if len(infos) == 0 {
		printer.Println("No binaries resolved.")
	} else {
		outputTable(infos)
	}

	if len(result.Errors) > 0 {
		return reportResolutionErrors(result.Errors)
	}
	return nil
}

func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	printer.Println(string(data))
	return nil
}

func outputTable(infos []BinaryInfo) {
	for i, info := range infos {
		if i > 0 {
			printer.Println()
		}
		printer.Printf("%s:%s (%s, %s)\n", info.Library, info.Name, info.Kind, info.Platform)
		printer.Printf("  %-14s %s\n", "toolchain", info.Toolchain)
		printer.Printf("  %-14s %s\n", "classes", info.ClassesDir)
		printer.Printf("  %-14s %s\n", "resources", info.ResourcesDir)
		if info.JarFile != "" {
			printer.Printf("  %-14s %s\n", "jar", info.JarFile)
		}
		if info.APIJarFile != "" {
			printer.Printf("  %-14s %s\n", "api jar", info.APIJarFile)
		}
	}
}

func reportResolutionErrors(errs []error) error {
	context := make(map[string]string)
	for _, err := range errs {
		var resErr *toolchain.ResolutionError
		if errors.As(err, &resErr) {
			context[resErr.Platform.Name] = "no toolchain"
		}
	}

	explanation := ""
	for _, err := range errs {
		explanation += "  " + err.Error() + "\n"
	}

	return printer.ErrorWithContext(
		fmt.Sprintf("%d binary(s) could not be configured", len(errs)),
		explanation,
		context,
		[]string{
			"Add a toolchain with a high enough java_version to build.yml",
			"Lower the platform of the failing binaries",
		},
	)
}
