package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsp2opt/internal/config"
	"github.com/katalvlaran/tsp2opt/internal/logging"
	"github.com/katalvlaran/tsp2opt/internal/store"
)

// app carries the streams and the resolved configuration shared by every
// subcommand.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string
	dbPath     string

	cfg config.Config
	log *slog.Logger
}

// run executes the command line args and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut, log: logging.Discard()}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		a.log.Error("command failed", slog.String("error", err.Error()))
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsp2opt",
		Short: "Solve Euclidean TSP instances with nearest neighbor and 2-opt",
		Long: `tsp2opt builds a tour through a set of cities with the nearest-neighbor
heuristic and improves it with 2-opt until no improving move remains.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.dbPath, "db", "", "path to the SQLite run archive")

	rootCmd.AddCommand(
		newSolveCmd(a),
		newBatchCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
		newDeleteCmd(a),
	)

	return rootCmd
}

// setup loads the configuration and applies the persistent flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.dbPath != "" {
		cfg.Store.Path = a.dbPath
	}

	logger, err := logging.New(a.errOut, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.With(slog.String("command", cmd.Name()))
	a.log.Debug("configuration loaded", slog.String("path", a.configPath))

	return nil
}

// interactive reports whether input is a terminal, in which case cities
// are entered through the prompt session instead of being parsed as text.
func (a *app) interactive() bool {
	f, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// openStore opens the configured archive; callers must Close it.
func (a *app) openStore() (*store.Store, error) {
	s, err := store.Open(a.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("run archive opened", slog.String("path", s.Path()))
	return s, nil
}

func (a *app) saveRun(ctx context.Context, s *store.Store, run store.Run) (int64, error) {
	id, err := s.SaveRun(ctx, run)
	if err != nil {
		return 0, err
	}
	a.log.Info("run archived", slog.Int64("id", id), slog.String("label", run.Label))
	return id, nil
}
