package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/wattwise-group/audit-cli/internal/model"
)

var (
	scoreInput string
	scoreJSON  bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the efficiency score for an audit file",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readAudit(scoreInput)
		if err != nil {
			return err
		}

		asm, err := newAssembler()
		if err != nil {
			return err
		}

		result, err := asm.Assemble(raw, nil)
		if err != nil {
			return eris.Wrap(err, "assemble report")
		}

		if scoreJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result.Score)
		}

		printScore(result.Score)
		return nil
	},
}

func printScore(sc model.EfficiencyScore) {
	fmt.Printf("Overall:    %.1f / 100 (%s)\n", sc.Overall, sc.Rating)
	fmt.Printf("Insulation: %.1f\n", sc.Insulation)
	fmt.Printf("HVAC:       %.1f\n", sc.HVAC)
	fmt.Printf("Lighting:   %.1f\n", sc.Lighting)
	fmt.Printf("Windows:    %.1f\n", sc.Windows)
	fmt.Printf("Age adj:    %+.1f\n", sc.AgeAdjustment)
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "audit JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print score as JSON")
	_ = scoreCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(scoreCmd)
}
