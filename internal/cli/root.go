// Package cli provides the command-line interface for brandtone.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/brandtone/brandtone/internal/version"
)

// logger is the process-wide CLI logger. It stays a no-op until the root
// command's PersistentPreRun configures it from --log-level, so helpers can
// log unconditionally.
var logger hclog.Logger = hclog.NewNullLogger()

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "brandtone",
		Short: "Brand theme and template selection engine",
		Long: `Brandtone derives accessible colour themes from a brand's colours and
picks content templates that fit the brand's signals.

Brand definitions are YAML or JSON files with a name, optional tagline,
tone, colours and source notes. From those, brandtone proposes WCAG-aware
theme token sets with repaired colour pairings, ranks theme variants, and
scores a template catalog against features extracted from the brand text.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "brandtone",
				Output: os.Stderr,
				Level:  hclog.LevelFromString(logLevel),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace, debug, info, warn, error, off)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(templatesCmd())
	rootCmd.AddCommand(registryCmd())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// versionCmd returns the version command.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
