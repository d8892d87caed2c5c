package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tsp2opt/internal/cities"
	"github.com/katalvlaran/tsp2opt/internal/config"
	"github.com/katalvlaran/tsp2opt/internal/report"
	"github.com/katalvlaran/tsp2opt/internal/store"
	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/katalvlaran/tsp2opt/tsp"
)

// solveFlags are the solver and output overrides shared by solve and batch.
type solveFlags struct {
	format    string
	precision int
	maxPasses int
	timeLimit time.Duration
	eps       float64
	save      bool
}

func (f *solveFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.format, "format", "text", "output format: text or json")
	fs.IntVar(&f.precision, "precision", 2, "decimals printed for distances")
	fs.IntVar(&f.maxPasses, "max-passes", 0, "stop 2-opt after this many passes (0 = until converged)")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "stop 2-opt after this long (0 = no limit)")
	fs.Float64Var(&f.eps, "eps", 0, "minimum gain for a 2-opt move to be applied")
	fs.BoolVar(&f.save, "save", false, "archive the run in the SQLite database")
}

// apply copies the flags the user actually set onto cfg and re-validates.
func (f *solveFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("precision") {
		cfg.Output.Precision = f.precision
	}
	if fs.Changed("max-passes") {
		cfg.Solver.MaxPasses = f.maxPasses
	}
	if fs.Changed("time-limit") {
		cfg.Solver.TimeLimit = f.timeLimit
	}
	if fs.Changed("eps") {
		cfg.Solver.Eps = f.eps
	}
	if fs.Changed("save") {
		cfg.Store.Save = f.save
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)

	return cfg.Validate()
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		flags    solveFlags
		label    string
		noMatrix bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one instance read from a file, a pipe or the interactive prompt",
		Long: `Solve reads city coordinates, prints the distance matrix, and reports the
2-opt-improved nearest-neighbor tour.

Files ending in .yaml, .yml or .json hold a structured instance; any other
file (and piped input) holds one "x y" pair per line. Without a file and
with a terminal on stdin, cities are entered interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd.Flags(), &a.cfg); err != nil {
				return err
			}
			if noMatrix {
				a.cfg.Output.ShowMatrix = false
			}

			points, source, err := a.readPoints(args)
			if err != nil {
				return err
			}
			if label == "" {
				label = source
			}

			res, dist, err := a.solve(label, points)
			if err != nil {
				return err
			}

			if err = a.render(a.out, label, points, dist, res); err != nil {
				return err
			}

			if !a.cfg.Store.Save {
				return nil
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := a.saveRun(cmd.Context(), s, store.NewRun(label, points, res))
			if err != nil {
				return err
			}
			if a.cfg.Output.Format == "text" {
				fmt.Fprintf(a.out, "\nSaved as run %d\n", id)
			}

			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&label, "label", "", "label stored with the run (defaults to the file name)")
	cmd.Flags().BoolVar(&noMatrix, "no-matrix", false, "do not print the distance matrix")

	return cmd
}

// readPoints picks the input source and returns the points with a label
// naming that source.
func (a *app) readPoints(args []string) ([]tsp.Point, string, error) {
	if len(args) == 1 {
		points, err := cities.LoadFile(args[0])
		if err != nil {
			return nil, "", err
		}
		return points, strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])), nil
	}

	if a.interactive() {
		w := a.promptWriter()
		points, err := cities.NewPrompter(a.in, w).ReadPoints()
		if err != nil {
			return nil, "", err
		}
		fmt.Fprintln(w)
		return points, "interactive", nil
	}

	points, err := cities.ReadPoints(a.in)
	if err != nil {
		return nil, "", err
	}
	return points, "stdin", nil
}

// promptWriter is where the interactive session talks to the user. JSON
// output keeps stdout for the document alone.
func (a *app) promptWriter() io.Writer {
	if a.cfg.Output.Format == "json" {
		return a.errOut
	}
	return a.out
}

// solve runs the pipeline and logs its timing.
func (a *app) solve(label string, points []tsp.Point) (tsp.Result, *matrix.Dense, error) {
	start := time.Now()
	res, dist, err := tsp.SolvePoints(points, a.cfg.SolverOptions())
	if err != nil {
		return tsp.Result{}, nil, fmt.Errorf("%s: %w", label, err)
	}

	a.log.Info("instance solved",
		slog.String("label", label),
		slog.Int("cities", len(points)),
		slog.Float64("length", res.Length),
		slog.Float64("initial_length", res.InitialLength),
		slog.Int("passes", res.Passes),
		slog.Int("moves", res.Moves),
		slog.Bool("converged", res.Converged),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, dist, nil
}

// render writes a solved instance in the configured format.
func (a *app) render(w io.Writer, label string, points []tsp.Point, dist *matrix.Dense, res tsp.Result) error {
	precision := a.cfg.Output.Precision

	if a.cfg.Output.Format == "json" {
		return report.WriteJSON(w, report.NewDocument(label, points, res))
	}

	if a.cfg.Output.ShowMatrix && dist != nil {
		fmt.Fprintln(w, "Distance matrix:")
		if err := report.WriteMatrix(w, dist, precision); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return report.WriteTour(w, points, res, precision)
}
