package main

// Offline tooling for the roadmap engine:
//   go run ./cmd/roadmapctl generate --answers answers.json --xlsx roadmap.xlsx
//   go run ./cmd/roadmapctl catalog validate --path catalog.json
//   go run ./cmd/roadmapctl regions kyiv

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roadmap-backend/internal/catalog"
	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
	"roadmap-backend/internal/shared/telemetry"
)

func main() {
	telemetry.SetOutput(os.Stderr)
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "roadmapctl",
		Short:         "Generate roadmaps and inspect the resource catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().String("catalog", "", "Catalog JSON file (defaults to the embedded catalog)")

	root.AddCommand(generateCmd())
	root.AddCommand(catalogCmd())
	root.AddCommand(regionsCmd())
	return root
}

func loadCatalog(cmd *cobra.Command) (roadmap.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	return catalog.Load(path)
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a roadmap from an answers file and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			answersPath, _ := cmd.Flags().GetString("answers")
			legacy, _ := cmd.Flags().GetBool("legacy")
			xlsxPath, _ := cmd.Flags().GetString("xlsx")

			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(answersPath)
			if err != nil {
				return fmt.Errorf("read answers: %w", err)
			}

			svc := roadmaps.NewService(nil, cat)
			var rec roadmaps.Record
			if legacy {
				var answers roadmap.LegacyAnswers
				if err := json.Unmarshal(data, &answers); err != nil {
					return fmt.Errorf("parse answers: %w", err)
				}
				rec = svc.PreviewLegacy(answers)
			} else {
				var answers roadmap.AssessmentAnswers
				if err := json.Unmarshal(data, &answers); err != nil {
					return fmt.Errorf("parse answers: %w", err)
				}
				rec = svc.Preview(answers)
			}

			if xlsxPath != "" {
				book, err := roadmaps.ExportXLSX(rec)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, book, 0o644); err != nil {
					return fmt.Errorf("write xlsx: %w", err)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
	cmd.Flags().String("answers", "", "Path to an answers JSON file")
	cmd.Flags().Bool("legacy", false, "Treat the answers as the injury-time survey")
	cmd.Flags().String("xlsx", "", "Also write the roadmap as an Excel workbook")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Parse and validate the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s ok: %d resources\n", cat.Version, catalog.Count(cat))
			return nil
		},
	})
	return cmd
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [id]",
		Short: "List regions, or show one region and its neighbors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, r := range roadmap.Regions() {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.ID, r.Name, r.NameUa)
				}
				return nil
			}
			id := strings.ToLower(strings.TrimSpace(args[0]))
			if !roadmap.IsKnownRegion(id) {
				return fmt.Errorf("unknown region %q", id)
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", id, roadmap.RegionName(id), roadmap.RegionNameUa(id))
			fmt.Fprintf(out, "neighbors: %s\n", strings.Join(roadmap.Neighbors(id), ", "))
			return nil
		},
	}
}
