package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/wattwise-group/audit-cli/internal/config"
	"github.com/wattwise-group/audit-cli/internal/hvac"
	"github.com/wattwise-group/audit-cli/internal/model"
	"github.com/wattwise-group/audit-cli/internal/recommend"
	"github.com/wattwise-group/audit-cli/internal/report"
	"github.com/wattwise-group/audit-cli/internal/score"
	"github.com/wattwise-group/audit-cli/internal/store"
	"github.com/wattwise-group/audit-cli/internal/usage"
)

// tablesPath is the shared --tables flag value.
var tablesPath string

// newAssembler builds a report assembler from the loaded config plus
// any policy table overrides.
func newAssembler() (*report.Assembler, error) {
	path := tablesPath
	if path == "" {
		path = cfg.Engine.TablesPath
	}
	tables, err := config.LoadPolicyTables(path)
	if err != nil {
		return nil, err
	}
	defaults, thresholds, standards := tables.MergeDefaults()

	if cfg.Engine.DefaultRegion != "" {
		standards.DefaultRegion = cfg.Engine.DefaultRegion
	}

	scoreCfg := score.DefaultConfig()
	if cfg.Engine.ScoreBandMax > cfg.Engine.ScoreBandMin {
		scoreCfg.Band = score.Band{Min: cfg.Engine.ScoreBandMin, Max: cfg.Engine.ScoreBandMax}
	}
	if cfg.Engine.AgeAdjustmentMax > 0 {
		scoreCfg.AgeAdjustmentMax = cfg.Engine.AgeAdjustmentMax
	}

	return report.NewAssembler(
		usage.NewEstimator(nil),
		hvac.NewAnalyzer(thresholds, standards),
		recommend.NewValidator(defaults, cfg.Engine.PartialScopeFactor),
		score.NewCalculator(scoreCfg),
	), nil
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.Store.SQLitePath
		if path == "" {
			path = "audit.db"
		}
		return store.NewSQLite(path)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// readAudit loads a raw audit document from a JSON file.
func readAudit(path string) (model.RawAudit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read audit %s", path)
	}
	var raw model.RawAudit
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "parse audit %s", path)
	}
	return raw, nil
}

// readRecommendations loads raw recommendations from a JSON file. The
// file may hold either a bare array or an object with a
// "recommendations" key.
func readRecommendations(path string) ([]model.RawRecommendation, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read recommendations %s", path)
	}

	var list []model.RawRecommendation
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapper struct {
		Recommendations []model.RawRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrapf(err, "parse recommendations %s", path)
	}
	return wrapper.Recommendations, nil
}

// auditRecommendations pulls embedded recommendations out of a raw
// audit document when no separate file is given.
func auditRecommendations(raw model.RawAudit) []model.RawRecommendation {
	v, ok := raw["recommendations"]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	recs := make([]model.RawRecommendation, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			recs = append(recs, m)
		} else {
			recs = append(recs, nil)
		}
	}
	return recs
}
