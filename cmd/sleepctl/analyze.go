package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/analysis"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	input  string
	days   int
	now    string
	only   string
	pretty bool
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a JSON record batch",
		Long: `Read a record batch ({"sleep_data": [...], "activity_data": [...], ...}) and
print the comprehensive analysis, or a single analyzer with --only.`,
		Example: `  sleepctl analyze --input batch.json --pretty
  cat batch.json | sleepctl analyze --only trends --days 14 --now 2024-01-31T12:00:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if opts.input != "-" {
				f, err := os.Open(opts.input)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runAnalyze(in, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Record batch file, - for stdin")
	cmd.Flags().IntVar(&opts.days, "days", analysis.DefaultTrendWindowDays, "Trend window in days")
	cmd.Flags().StringVar(&opts.now, "now", "", "Trend reference instant (RFC3339); defaults to the end of the latest night")
	cmd.Flags().StringVar(&opts.only, "only", "", "Run one analyzer: summary, optimal, trends or correlations")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the JSON output")

	return cmd
}

func runAnalyze(in io.Reader, out io.Writer, opts analyzeOptions) error {
	if opts.days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	engineOpts := analysis.Options{WindowDays: opts.days}
	if opts.now != "" {
		now, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("--now must be an RFC3339 timestamp: %w", err)
		}
		engineOpts.Now = now
	}

	var batch domain.RecordBatch
	if err := json.NewDecoder(in).Decode(&batch); err != nil {
		return fmt.Errorf("decode record batch: %w", err)
	}

	ds, err := analysis.Load(batch)
	if err != nil {
		return err
	}

	var result any
	if opts.only == "" {
		result = analysis.Comprehensive(ds, engineOpts)
	} else {
		section, err := analysis.ParseSection(opts.only)
		if err != nil {
			return err
		}
		if result, err = analysis.Run(ds, section, engineOpts); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}
