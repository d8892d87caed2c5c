package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tsp2opt/internal/cities"
	"github.com/katalvlaran/tsp2opt/internal/report"
	"github.com/katalvlaran/tsp2opt/internal/store"
	"github.com/katalvlaran/tsp2opt/tsp"
)

// batchItem is one solved file, kept at its input position.
type batchItem struct {
	label  string
	points []tsp.Point
	res    tsp.Result
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		flags   solveFlags
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch file...",
		Short: "Solve several instance files concurrently",
		Long: `Batch solves every file on a bounded pool of workers and prints one
summary line per file, in the order the files were given. The first failure
cancels the files not yet started.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd.Flags(), &a.cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			start := time.Now()
			items, err := a.solveAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			a.log.Info("batch finished",
				slog.Int("files", len(items)),
				slog.Int("workers", a.cfg.Batch.Workers),
				slog.Duration("elapsed", time.Since(start)),
			)

			ids := make([]int64, len(items))
			if a.cfg.Store.Save {
				s, err := a.openStore()
				if err != nil {
					return err
				}
				defer s.Close()
				for i, it := range items {
					if ids[i], err = a.saveRun(cmd.Context(), s, store.NewRun(it.label, it.points, it.res)); err != nil {
						return err
					}
				}
			}

			return a.writeBatch(items, ids)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&workers, "workers", 4, "number of files solved concurrently")

	return cmd
}

// solveAll solves files with at most cfg.Batch.Workers in flight.
func (a *app) solveAll(ctx context.Context, files []string) ([]batchItem, error) {
	items := make([]batchItem, len(files))
	opts := a.cfg.SolverOptions()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Batch.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			points, err := cities.LoadFile(path)
			if err != nil {
				return err
			}
			res, _, err := tsp.SolvePoints(points, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			items[i] = batchItem{label: label, points: points, res: res}
			a.log.Debug("file solved",
				slog.String("file", path),
				slog.Int("cities", len(points)),
				slog.Float64("length", res.Length),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

func (a *app) writeBatch(items []batchItem, ids []int64) error {
	if a.cfg.Output.Format == "json" {
		docs := make([]report.Document, len(items))
		for i, it := range items {
			docs[i] = report.NewDocument(it.label, it.points, it.res)
		}
		return report.WriteJSON(a.out, docs)
	}

	p := a.cfg.Output.Precision
	for i, it := range items {
		fmt.Fprintf(a.out, "%s: %d cities, length %.*f (nearest neighbor %.*f, moves %d, passes %d)",
			it.label, len(it.points), p, it.res.Length, p, it.res.InitialLength, it.res.Moves, it.res.Passes)
		if ids[i] != 0 {
			fmt.Fprintf(a.out, " [run %d]", ids[i])
		}
		fmt.Fprintln(a.out)
	}

	return nil
}
