package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/carson-networks/audit-sampler/internal/export"
	"github.com/carson-networks/audit-sampler/internal/ingest"
	"github.com/carson-networks/audit-sampler/internal/runconfig"
	"github.com/carson-networks/audit-sampler/internal/sampling"
)

func runCmd() *cobra.Command {
	var configPath string
	var inputPath string
	var outputPath string
	var delimiter string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a sampling definition against a CSV ledger export",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(delimiter) != 1 {
				return fmt.Errorf("delimiter must be a single character, got %q", delimiter)
			}

			cfg, err := runconfig.Load(configPath)
			if err != nil {
				return err
			}

			ds, err := ingest.ReadFile(inputPath, cfg.Columns, rune(delimiter[0]))
			if err != nil {
				return err
			}

			results := sampling.RunAll(ds, cfg.Plans)
			printResults(os.Stdout, cfg.Name, results)

			if err := export.WriteWorkbook(outputPath, results); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "\nWorkbook written to %s\n", outputPath)

			if failures := countFailures(results); failures > 0 {
				return fmt.Errorf("run finished with %d failed sub-population(s)", failures)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "Run definition YAML (required)")
	c.Flags().StringVarP(&inputPath, "input", "i", "", "Ledger CSV export (required)")
	c.Flags().StringVarP(&outputPath, "output", "o", "utvalg.xlsx", "Output workbook path")
	c.Flags().StringVar(&delimiter, "delimiter", ";", "CSV field delimiter")

	_ = c.MarkFlagRequired("config")
	_ = c.MarkFlagRequired("input")
	return c
}

func printResults(w io.Writer, name string, results []sampling.Result) {
	fmt.Fprintf(w, "Run:         %s\n", name)
	fmt.Fprintf(w, "Sub-populations: %d\n\n", len(results))

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			fmt.Fprintf(w, "- [FAIL] %s: %s\n", r.Plan.SubPopulation.Name, r.Err)
			continue
		}

		mark := "OK"
		if r.Outputs.Shortfall() {
			mark = "SHORT"
		}
		fmt.Fprintf(w, "- [%s] %s: %d records, %d strata, %d selected\n",
			mark,
			r.Outputs.Name,
			len(r.Outputs.Members),
			len(r.Outputs.Strata.Strata),
			r.Outputs.Draw.SelectedCount(),
		)
		if n := len(r.Outputs.Strata.Unassignable); n > 0 {
			fmt.Fprintf(w, "  %d record(s) without amount left unassigned\n", n)
		}
	}
}

func countFailures(results []sampling.Result) int {
	n := 0
	for i := range results {
		if results[i].Err != nil {
			n++
		}
	}
	return n
}
