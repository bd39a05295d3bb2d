// -- cmd/convert.go --
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollisng/reportforge/internal/config"
	"github.com/hollisng/reportforge/internal/convert"
	"github.com/hollisng/reportforge/internal/network"
	"github.com/hollisng/reportforge/internal/observability"
	"github.com/hollisng/reportforge/internal/storage"
)

// newConvertCmd creates the `convert` command: upload a spreadsheet to the
// conversion service and save the generated document.
func newConvertCmd() *cobra.Command {
	var outputDir string
	var strategyName string

	convertCmd := &cobra.Command{
		Use:   "convert <spreadsheet>",
		Short: "Convert a spreadsheet through the remote conversion service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			dir := outputDir
			if dir == "" {
				dir = cfg.Output.Dir
			}
			saver := storage.NewLocalSaver(dir)

			name := strategyName
			if name == "" {
				name = cfg.Conversion.Strategy
			}

			clientCfg := network.NewDefaultClientConfig()
			clientCfg.RequestTimeout = cfg.Network.Timeout
			clientCfg.IgnoreTLSErrors = cfg.Network.IgnoreTLSErrors
			clientCfg.Logger = logger

			var strategy convert.Strategy
			switch name {
			case config.StrategyBlob:
				strategy = &convert.BlobStrategy{
					HTTPClient: network.NewClient(clientCfg).Client,
					BaseURL:    cfg.Service.BaseURL,
					Saver:      saver,
					Logger:     logger,
				}
			case config.StrategyRedirect:
				// The redirect contract signals success through the resolved
				// URL, so this client must follow redirects.
				clientCfg.FollowRedirects = true
				strategy = &convert.RedirectStrategy{
					HTTPClient: network.NewClient(clientCfg).Client,
					DailyURL:   cfg.Service.DailyURL,
					Saver:      saver,
					Logger:     logger,
				}
			default:
				return fmt.Errorf("unknown conversion strategy %q", name)
			}

			result, err := convert.NewPipeline(strategy, logger).Convert(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Document saved to %s (%d bytes)\n", result.Path, result.Size)
			return nil
		},
	}

	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the saved document (default from config)")
	convertCmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "conversion strategy: blob or redirect (default from config)")

	return convertCmd
}
