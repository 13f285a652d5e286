package main

import (
	"fmt"
	"os"

	"dealqa/adapters/excel"
	"dealqa/adapters/pubmatic"
	"dealqa/app"
	"dealqa/domain/deal"
	"dealqa/internal"
	"dealqa/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		authToken string
		output    string
		baseURL   string
		idColumn  string
		headerRow int
	)

	cmd := &cobra.Command{
		Use:   "dealqa [spreadsheet]",
		Short: "Validate spreadsheet deal records against the PubMatic deals API",
		Long: `Reconcile deal records in an Excel or CSV sheet against the PubMatic
deals API, producing a per-row PASS/FAIL/ERROR report.

The header row is auto-detected by scanning for the identifier column;
use --header-row to pin it explicitly.

Example: dealqa deals.xlsx --auth-token $TOKEN --output report.xlsx`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; flags and real env win over it.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.API.BaseURL = baseURL
			}
			if output != "" {
				cfg.Report.OutputPath = output
			}

			logger := internal.NewDefaultLogger()

			service := app.NewValidationService(
				excel.NewDataReader(args[0], idColumn, headerRow),
				pubmatic.NewClient(pubmatic.Config{
					BaseURL:   cfg.API.BaseURL,
					AuthToken: authToken,
					DataPath:  cfg.API.DataPath,
					Timeout:   cfg.API.Timeout,
				}),
				excel.NewReportWriter(cfg.Report.OutputPath),
				deal.DefaultChecks(),
				idColumn,
				logger,
			)

			summary, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Validation complete. Report saved to %s\n", cfg.Report.OutputPath)
			fmt.Printf("%d validated: %d passed, %d failed, %d errors (%d rows skipped)\n",
				summary.Total, summary.Passed, summary.Failed, summary.Errors, summary.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&authToken, "auth-token", "", "PubMatic OAuth bearer token")
	cmd.Flags().StringVar(&output, "output", "", "report file path (default deal_qa_report.xlsx)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "deals API base URL override")
	cmd.Flags().StringVar(&idColumn, "id-column", "Deal ID", "column holding the deal identifier")
	cmd.Flags().IntVar(&headerRow, "header-row", 0, "explicit 1-based header row (0 = auto-detect)")
	_ = cmd.MarkFlagRequired("auth-token")

	return cmd
}
