// Package cli provides the command-line interface for brandtone.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandtone/brandtone/internal/template"
)

// registryCmd returns the registry command group.
func registryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the template catalog",
		Long: `Inspect the built-in template catalog.

Examples:
  # List every template
  brandtone registry list

  # List LinkedIn templates
  brandtone registry list --channel linkedin

  # Show one template in full
  brandtone registry show onepager.hero-left-cta`,
	}

	cmd.AddCommand(registryListCmd())
	cmd.AddCommand(registryShowCmd())

	return cmd
}

func registryListCmd() *cobra.Command {
	var (
		channelName string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := template.Builtin()

			metas := reg.All()
			if channelName != "" {
				channel, err := template.ParseChannel(channelName)
				if err != nil {
					return err
				}
				metas = reg.ByChannel(channel)
			}

			if format == "json" {
				data, err := json.MarshalIndent(metas, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode catalog: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			table := NewTable([]string{"ID", "CHANNELS", "DENSITY", "HERO", "ASPECT"})
			for _, m := range metas {
				channels := make([]string, len(m.Channels))
				for i, c := range m.Channels {
					channels[i] = string(c)
				}
				table.AddRow([]string{
					m.ID,
					strings.Join(channels, ", "),
					string(m.Density),
					string(m.HeroStyle),
					m.AspectHint,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&channelName, "channel", "c", "", "filter by channel (onepager, story, linkedin)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (json, table)")

	return cmd
}

func registryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one template in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := template.Builtin()

			meta, err := reg.ByID(args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode template: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
