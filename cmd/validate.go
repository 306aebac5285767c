package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/wattwise-group/audit-cli/internal/config"
	"github.com/wattwise-group/audit-cli/internal/recommend"
	"github.com/wattwise-group/audit-cli/internal/report"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Repair and normalize a recommendations file",
	Long:  "Substitutes category defaults for missing or invalid financial figures and recomputes inconsistent payback periods. Output is stable under repeated runs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawRecs, err := readRecommendations(validateInput)
		if err != nil {
			return err
		}
		if rawRecs == nil {
			return eris.New("no recommendations found in input")
		}

		path := tablesPath
		if path == "" {
			path = cfg.Engine.TablesPath
		}
		tables, err := config.LoadPolicyTables(path)
		if err != nil {
			return err
		}
		defaults, _, _ := tables.MergeDefaults()

		validator := recommend.NewValidator(defaults, cfg.Engine.PartialScopeFactor)
		validated := validator.ValidateAll(report.ParseRecommendations(rawRecs))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(validated)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateInput, "recs", "", "recommendations JSON file (required)")
	validateCmd.Flags().StringVar(&tablesPath, "tables", "", "policy table overrides (YAML)")
	_ = validateCmd.MarkFlagRequired("recs")
	rootCmd.AddCommand(validateCmd)
}
