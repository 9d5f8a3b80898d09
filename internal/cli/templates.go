// Package cli provides the command-line interface for brandtone.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandtone/brandtone/internal/brand"
	"github.com/brandtone/brandtone/internal/judge"
	"github.com/brandtone/brandtone/internal/template"
)

// templatesCmd returns the templates command.
func templatesCmd() *cobra.Command {
	var (
		brandPath   string
		channelName string
		outlinePath string
		format      string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Rank content templates for a brand",
		Long: `Rank the template catalog for a brand and channel.

Features are extracted from the brand's name, tagline and source notes and
scored against each template's feature fingerprint. With --outline, the
candidates are re-ranked against the concrete content: section wording,
text volume versus template density, and layout hierarchy.

Examples:
  # Top 3 one-pager templates for a brand
  brandtone templates --brand brand.yaml --channel onepager

  # All story templates as JSON
  brandtone templates --brand brand.yaml --channel story --top 0 --format json

  # Re-rank against a concrete content outline
  brandtone templates --brand brand.yaml --channel onepager --outline outline.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := loadIdentity(brandPath)
			if err != nil {
				return err
			}

			channel, err := template.ParseChannel(channelName)
			if err != nil {
				return err
			}

			reg := template.Builtin()
			features := brand.ExtractFeatures(id.Signals())
			logger.Debug("extracted features", "brand", id.Name, "features", features)

			if top <= 0 {
				top = reg.Len()
			}
			picked := judge.PickTemplates(reg, features, channel, top)

			if outlinePath != "" {
				outline, err := loadOutline(outlinePath)
				if err != nil {
					return err
				}
				picked = rerankByOutline(picked, id, outline)
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(picked, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode templates: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			case "table":
				writeTemplatesTable(cmd, picked)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&brandPath, "brand", "b", "", "brand definition file (YAML or JSON)")
	cmd.Flags().StringVarP(&channelName, "channel", "c", "onepager", "target channel (onepager, story, linkedin)")
	cmd.Flags().StringVarP(&outlinePath, "outline", "o", "", "content outline file for re-ranking (YAML or JSON)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (json, table)")
	cmd.Flags().IntVarP(&top, "top", "t", 3, "number of templates to return (0 = all)")
	_ = cmd.MarkFlagRequired("brand")

	return cmd
}

// rerankByOutline reorders fingerprint-picked candidates by the template
// judge's composite against the concrete outline. Fingerprint scores are
// kept on each candidate for display.
func rerankByOutline(picked []judge.Ranked, id brand.Identity, outline judge.ContentOutline) []judge.Ranked {
	metas := make([]template.Meta, len(picked))
	for i, r := range picked {
		metas[i] = r.Meta
	}

	order := judge.JudgeTemplateSelection(metas, id, outline)
	reranked := make([]judge.Ranked, 0, len(picked))
	for _, idx := range order {
		reranked = append(reranked, picked[idx])
	}
	return reranked
}

func writeTemplatesTable(cmd *cobra.Command, picked []judge.Ranked) {
	table := NewTable([]string{"RANK", "ID", "DENSITY", "HERO", "SCORE", "SLOTS"})
	table.SetColumnMaxWidth(5, 44)

	for i, r := range picked {
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			r.Meta.ID,
			string(r.Meta.Density),
			string(r.Meta.HeroStyle),
			fmt.Sprintf("%.2f", r.Score),
			strings.Join(r.Meta.Slots, ", "),
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), table.Render())
}
