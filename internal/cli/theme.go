// Package cli provides the command-line interface for brandtone.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/brandtone/brandtone/internal/brand"
	"github.com/brandtone/brandtone/internal/colour"
	"github.com/brandtone/brandtone/internal/judge"
)

// themeReport is one ranked theme in the JSON output.
type themeReport struct {
	Rank       int                     `json:"rank"`
	Theme      *colour.Theme           `json:"theme"`
	Validation colour.ValidationReport `json:"validation"`
	Usage      colour.UsageGuide       `json:"usage"`
}

// themeCmd returns the theme command.
func themeCmd() *cobra.Command {
	var (
		brandPath string
		variants  int
		format    string
		cssPrefix string
		preview   bool
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Propose colour themes for a brand",
		Long: `Propose one or more colour themes from a brand definition.

Each theme is a full token set (brand, accent, neutral and surface ramps
plus semantic colours) with WCAG AA repaired pairings for CTA, chip and
card surfaces. Themes are validated after repair and ranked by a composite
of accessibility, brand fit and palette harmony.

Examples:
  # Propose the base theme as JSON
  brandtone theme --brand brand.yaml

  # Base theme plus vibrant and muted variants, best first
  brandtone theme --brand brand.yaml --variants 3

  # CSS custom properties for the best theme
  brandtone theme --brand brand.yaml --format css --css-prefix acme

  # Human-readable table with terminal colour swatches
  brandtone theme --brand brand.yaml --format table --preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadIdentity(brandPath)
			if err != nil {
				return err
			}

			conv := colour.NewConverter()
			base := brand.ResolveColors(id.Colors)
			themes, err := colour.ProposeThemeVariants(conv, base, variants)
			if err != nil {
				return fmt.Errorf("failed to propose themes: %w", err)
			}
			logger.Debug("proposed themes",
				"brand", id.Name, "count", len(themes), "precise", conv.Precise())

			order := judge.JudgeColorSchemes(themes, id)
			ranked := make([]*colour.Theme, 0, len(themes))
			for _, idx := range order {
				ranked = append(ranked, themes[idx])
			}

			switch format {
			case "json":
				return writeThemesJSON(cmd, ranked)
			case "css":
				if len(ranked) == 0 {
					return fmt.Errorf("no themes proposed")
				}
				fmt.Fprint(cmd.OutOrStdout(), ranked[0].CSSVariables(cssPrefix))
				return nil
			case "table":
				return writeThemesTable(cmd, ranked, preview)
			default:
				return fmt.Errorf("unknown format %q (want json, css or table)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&brandPath, "brand", "b", "", "brand definition file (YAML or JSON)")
	cmd.Flags().IntVarP(&variants, "variants", "n", 1, "number of themes to propose (base plus variants)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, css, table)")
	cmd.Flags().StringVar(&cssPrefix, "css-prefix", "bt", "variable prefix for --format css")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour swatches in terminal output")
	_ = cmd.MarkFlagRequired("brand")

	return cmd
}

func writeThemesJSON(cmd *cobra.Command, themes []*colour.Theme) error {
	reports := make([]themeReport, len(themes))
	for i, theme := range themes {
		reports[i] = themeReport{
			Rank:       i + 1,
			Theme:      theme,
			Validation: colour.ValidateTheme(theme),
			Usage:      colour.NewUsageGuide(theme),
		}
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode themes: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeThemesTable(cmd *cobra.Command, themes []*colour.Theme, preview bool) error {
	out := cmd.OutOrStdout()
	colourize := preview && colour.SupportsANSIColours()

	for rank, theme := range themes {
		name := theme.VariantName
		if name == "" {
			name = "base"
		}
		fmt.Fprintf(out, "#%d %s", rank+1, name)
		if !theme.Precise {
			fmt.Fprint(out, " (luminance fallback)")
		}
		fmt.Fprintln(out)

		report := colour.ValidateTheme(theme)
		if !report.Valid {
			for _, issue := range report.Issues {
				fmt.Fprintf(out, "  warning: %s\n", issue)
			}
		}

		names := make([]string, 0, len(theme.Tokens))
		for tokenName := range theme.Tokens {
			names = append(names, tokenName)
		}
		sort.Strings(names)

		if colourize {
			for _, tokenName := range names {
				fmt.Fprintf(out, "  %s\n", colour.PreviewWithLabel(theme.Tokens[tokenName], tokenName, 6))
			}
			fmt.Fprintf(out, "  cta      %s\n", colour.PreviewPairing(theme.Pairs.CTA, "Call to action", 18))
			fmt.Fprintf(out, "  chip     %s\n", colour.PreviewPairing(theme.Pairs.Chip, "Chip", 18))
			fmt.Fprintf(out, "  card     %s\n", colour.PreviewPairing(theme.Pairs.Card, "Card text", 18))
		} else {
			table := NewTable([]string{"TOKEN", "VALUE"})
			for _, tokenName := range names {
				table.AddRow([]string{tokenName, theme.Tokens[tokenName]})
			}
			table.AddRow([]string{"cta", theme.Pairs.CTA.FG + " on " + theme.Pairs.CTA.BG})
			table.AddRow([]string{"chip", theme.Pairs.Chip.FG + " on " + theme.Pairs.Chip.BG})
			table.AddRow([]string{"card", theme.Pairs.Card.FG + " on " + theme.Pairs.Card.BG})
			fmt.Fprint(out, table.Render())
		}
		fmt.Fprintln(out)
	}

	return nil
}
