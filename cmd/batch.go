package main

import (
	"os/signal"
	"path/filepath"
	"sort"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wattwise-group/audit-cli/internal/model"
)

var (
	batchDir         string
	batchLimit       int
	batchSave        bool
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Assemble reports for a directory of audit files",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		paths, err := filepath.Glob(filepath.Join(batchDir, "*.json"))
		if err != nil {
			return eris.Wrap(err, "glob audit files")
		}
		sort.Strings(paths)

		if len(paths) == 0 {
			zap.L().Info("no audit files found", zap.String("dir", batchDir))
			return nil
		}
		if batchLimit > 0 && len(paths) > batchLimit {
			paths = paths[:batchLimit]
		}

		asm, err := newAssembler()
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.MaxConcurrentAudits
		}

		zap.L().Info("processing batch",
			zap.Int("audits", len(paths)),
			zap.Int("concurrency", concurrency),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		var succeeded, failed atomic.Int64

		for _, path := range paths {
			g.Go(func() error {
				log := zap.L().With(zap.String("audit", path))

				run, err := st.CreateRun(gctx, filepath.Base(path))
				if err != nil {
					failed.Add(1)
					log.Error("create run failed", zap.Error(err))
					return nil
				}

				raw, err := readAudit(path)
				if err == nil {
					var result *model.ReportData
					result, err = asm.Assemble(raw, auditRecommendations(raw))
					if err == nil {
						saved := result
						if !batchSave {
							saved = nil
						}
						err = st.CompleteRun(gctx, run.ID, saved)
						if err == nil {
							log.Info("report assembled",
								zap.Float64("score", result.Score.Overall),
								zap.Int("recommendations", len(result.Recommendations)),
							)
						}
					}
				}

				if err != nil {
					failed.Add(1)
					log.Error("report failed", zap.Error(err))
					if fErr := st.FailRun(gctx, run.ID, err.Error()); fErr != nil {
						log.Warn("failed to record run failure", zap.Error(fErr))
					}
					return nil // don't abort batch on individual failure
				}

				succeeded.Add(1)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch processing")
		}

		zap.L().Info("batch complete",
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", ".", "directory of audit JSON files")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of audits to process (0 = all)")
	batchCmd.Flags().BoolVar(&batchSave, "save", true, "persist assembled reports on each run")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "concurrent audits (default from config)")
	rootCmd.AddCommand(batchCmd)
}
