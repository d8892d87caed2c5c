package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsp2opt/internal/report"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(a.out, "No archived runs")
				return nil
			}

			p := a.cfg.Output.Precision
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tLABEL\tCITIES\tLENGTH\tMOVES")
			for _, r := range runs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.*f\t%d\n",
					r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Label, len(r.Points), p, r.Length, r.Moves)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs listed (0 = all)")

	return cmd
}

func parseRunID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid run id %q", s)
	}
	return id, nil
}

func newShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Re-print an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRunID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
				if err = a.cfg.Validate(); err != nil {
					return err
				}
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			run, err := s.GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}

			if a.cfg.Output.Format == "json" {
				return report.WriteJSON(a.out, report.NewDocument(run.Label, run.Points, run.Result()))
			}
			fmt.Fprintf(a.out, "Run %d (%s) %s\n\n", run.ID, run.Label, run.CreatedAt.Format("2006-01-02 15:04:05"))
			return report.WriteTour(a.out, run.Points, run.Result(), a.cfg.Output.Precision)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRunID(args[0])
			if err != nil {
				return err
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			if err = s.DeleteRun(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted run %d\n", id)
			return nil
		},
	}
}
