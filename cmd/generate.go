// -- cmd/generate.go --
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hollisng/reportforge/api/schemas"
	"github.com/hollisng/reportforge/internal/generate"
	"github.com/hollisng/reportforge/internal/network"
	"github.com/hollisng/reportforge/internal/observability"
	"github.com/hollisng/reportforge/internal/report"
	"github.com/hollisng/reportforge/internal/storage"
)

// newGenerateCmd creates the `generate` command: build a report from a
// draft file, submit it to the rendering service, and save the returned
// document.
func newGenerateCmd() *cobra.Command {
	var inputPath string
	var outputDir string

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Submit a report draft to the rendering service and save the document",
		Long: `Generate reads a report draft (YAML or JSON), assembles the report model,
submits it to the configured rendering service, and saves the returned
document locally. Findings with a blank name or description are skipped,
matching the interactive editor's validation gate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			draft, err := readDraft(inputPath)
			if err != nil {
				return err
			}

			builder := report.NewBuilder(logger)
			scalars := draft.Clone()
			scalars.Findings = nil
			builder.Load(scalars)

			skipped := 0
			for _, f := range draft.Findings {
				added := builder.AddFinding(report.Draft{
					RiskLevel:   f.RiskLevel,
					Name:        f.Name,
					Description: f.Description,
					Process:     f.Process,
					Advice:      f.Advice,
				})
				if !added {
					skipped++
				}
			}
			if skipped > 0 {
				logger.Warn("Skipped findings with blank required fields.", zap.Int("count", skipped))
			}

			dir := outputDir
			if dir == "" {
				dir = cfg.Output.Dir
			}

			clientCfg := network.NewDefaultClientConfig()
			clientCfg.RequestTimeout = cfg.Network.Timeout
			clientCfg.IgnoreTLSErrors = cfg.Network.IgnoreTLSErrors
			clientCfg.Logger = logger

			client := generate.NewClient(
				cfg.Service.BaseURL,
				network.NewClient(clientCfg).Client,
				storage.NewLocalSaver(dir),
				logger,
			)

			payload := report.ToPayload(builder.Snapshot())
			result, err := client.Submit(cmd.Context(), payload)
			if err != nil {
				return fmt.Errorf("report generation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s (%d bytes)\n", result.Path, result.Size)
			return nil
		},
	}

	generateCmd.Flags().StringVarP(&inputPath, "input", "i", "", "report draft file (.yaml or .json)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the saved document (default from config)")
	generateCmd.MarkFlagRequired("input")

	return generateCmd
}

// readDraft loads a report draft from a YAML or JSON file.
func readDraft(path string) (schemas.Report, error) {
	var draft schemas.Report

	data, err := os.ReadFile(path)
	if err != nil {
		return draft, fmt.Errorf("failed to read draft file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &draft); err != nil {
			return draft, fmt.Errorf("failed to parse draft JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &draft); err != nil {
			return draft, fmt.Errorf("failed to parse draft YAML: %w", err)
		}
	}
	return draft, nil
}
