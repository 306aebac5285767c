package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wattwise-group/audit-cli/internal/export"
)

var (
	reportInput  string
	reportRecs   string
	reportFormat string
	reportOutput string
	reportSave   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assemble a full efficiency report from an audit file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := readAudit(reportInput)
		if err != nil {
			return err
		}

		rawRecs, err := readRecommendations(reportRecs)
		if err != nil {
			return err
		}
		if rawRecs == nil {
			rawRecs = auditRecommendations(raw)
		}

		asm, err := newAssembler()
		if err != nil {
			return err
		}

		result, err := asm.Assemble(raw, rawRecs)
		if err != nil {
			return eris.Wrap(err, "assemble report")
		}

		if reportSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return eris.Wrap(err, "migrate store")
			}

			run, err := st.CreateRun(ctx, reportInput)
			if err != nil {
				return err
			}
			if err := st.CompleteRun(ctx, run.ID, result); err != nil {
				return err
			}
			zap.L().Info("report saved", zap.String("run_id", run.ID))
		}

		out, closeOut, err := openOutput(reportOutput)
		if err != nil {
			return err
		}
		defer closeOut()

		switch reportFormat {
		case "table":
			export.WriteTable(out, result)
			return nil
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		case "xlsx":
			if reportOutput == "" {
				return eris.New("--output is required for xlsx format")
			}
			return export.WriteXLSX(out, result)
		default:
			return eris.Errorf("unknown format: %s", reportFormat)
		}
	},
}

// openOutput returns stdout when path is empty, otherwise a created file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "create output %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "audit JSON file (required)")
	reportCmd.Flags().StringVar(&reportRecs, "recs", "", "recommendations JSON file (default: embedded in audit)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "output format: table, json, xlsx")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "write output to file instead of stdout")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "persist the report as a run in the store")
	reportCmd.Flags().StringVar(&tablesPath, "tables", "", "policy table overrides (YAML)")
	_ = reportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(reportCmd)
}
