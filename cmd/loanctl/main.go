package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"loandash/internal/charts"
	"loandash/internal/dashboard"
	"loandash/internal/dataset"
	"loandash/internal/errors"
	"loandash/internal/profiling"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "loanctl",
		Short:        "Offline tools for the loan approval dashboard",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSummaryCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSummaryCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Load and clean a loan file, then print imputed cells, column profiles and headline figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.OutOrStdout(), dataFile)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "Loan_data.csv", "Loan data file (.csv or .xlsx)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		dataFile   string
		outDir     string
		areas      []string
		dependents string
		bins       int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the five charts as standalone HTML files",
		Long: `Write the five charts as standalone HTML files for one control state.

Without --area every property area is included.

Example: loanctl export --data Loan_data.csv --out ./charts --area Urban --area Rural --dependents 3+`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cmd.OutOrStdout(), dataFile, outDir, areas, dependents, bins)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "Loan_data.csv", "Loan data file (.csv or .xlsx)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory the HTML files are written to")
	cmd.Flags().StringArrayVar(&areas, "area", nil, "Property area to include (repeatable)")
	cmd.Flags().StringVar(&dependents, "dependents", "0", "Dependents for the donut chart: 0, 1, 2 or 3 (3+)")
	cmd.Flags().IntVar(&bins, "bins", charts.DefaultBins, "Loan amount histogram bins")
	return cmd
}

func runSummary(w io.Writer, dataFile string) error {
	ds, err := dataset.Load(dataFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Source: %s\n", ds.Source())
	fmt.Fprintf(w, "Applications: %d\n", ds.Len())
	fmt.Fprintf(w, "Property areas: %v\n", ds.Areas())
	fmt.Fprintf(w, "Loan statuses: %v\n", ds.Statuses())

	report := ds.Report()
	fmt.Fprintf(w, "\nImputed cells: %d\n", report.Total())
	for _, f := range report.Fills {
		fmt.Fprintf(w, "  %-18s %-6s %-8s %d\n", f.Column, f.Strategy, f.Value, f.Count)
	}

	profiles, err := profiling.ProfileRecords(ds.Records())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%-18s %10s %10s %10s %10s %10s %8s %s\n", "Column", "Min", "Q25", "Median", "Q75", "Max", "Outliers", "Skew")
	for _, p := range profiles {
		fmt.Fprintf(w, "%-18s %10.1f %10.1f %10.1f %10.1f %10.1f %8d %.2f\n",
			p.Column, p.Min, p.Q25, p.Median, p.Q75, p.Max, p.Outliers, p.Skewness)
	}

	s := dashboard.Summarize(ds.Records())
	fmt.Fprintf(w, "\nApproved: %d (%.1f%%)\n", s.Approved, s.ApprovalRate*100)
	fmt.Fprintf(w, "Median loan amount: %.1f\n", s.MedianLoanAmount)
	fmt.Fprintf(w, "Median applicant income: %.1f\n", s.MedianIncome)
	return nil
}

func runExport(ctx context.Context, w io.Writer, dataFile, outDir string, areas []string, dependents string, bins int) error {
	if bins < 1 {
		return fmt.Errorf("--bins must be at least 1, got %d", bins)
	}

	ds, err := dataset.Load(dataFile)
	if err != nil {
		return err
	}

	// Build through a session so flag values are validated like form values
	dash := dashboard.New(ds, nil, bins)
	sess := dashboard.NewSessionStore(dash, 1).Create()
	if len(areas) > 0 {
		update, err := sess.Apply(dashboard.ControlArea, areas)
		if err != nil {
			return err
		}
		if len(update.State.Areas) == 0 {
			return errors.InvalidInput(fmt.Sprintf("no --area value matches %v", ds.Areas()))
		}
	}
	if _, err := sess.Apply(dashboard.ControlDependents, []string{dependents}); err != nil {
		return err
	}
	view := sess.Render()

	exporter := charts.NewExporter(outDir, true)
	eg, egctx := errgroup.WithContext(ctx)
	for _, fig := range view.Figures {
		fig := fig
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			return exporter.Export(fig)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Areas: %v, dependents: %s\n", view.State.Areas, view.State.DependentsLabel())
	for _, fig := range view.Figures {
		fmt.Fprintf(w, "  %-45s %d rows\n", exporter.Path(fig.ID), fig.Rows)
	}
	return nil
}
