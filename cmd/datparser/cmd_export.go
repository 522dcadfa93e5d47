package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emclabs/datparser/esrp"
	"github.com/emclabs/datparser/format"
)

func newExportCmd() *cobra.Command {
	var (
		outputFormat string
		outputPath   string
		traceIndex   int
		scanIndex    int
		combineAll   bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export trace data as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := esrp.ParseFile(args[0])
			if err != nil {
				return err
			}

			var opts format.Options
			if cmd.Flags().Changed("trace") {
				opts.Trace = &traceIndex
			}
			if cmd.Flags().Changed("scan") {
				opts.Scan = &scanIndex
			}
			opts.CombineAll = combineAll

			var out io.Writer = os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			enc, err := format.NewEncoder(outputFormat, out)
			if err != nil {
				return err
			}
			return format.Export(enc, file, opts)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "csv", "output format (csv, json, text)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&traceIndex, "trace", 0, "export a single trace by index")
	cmd.Flags().IntVar(&scanIndex, "scan", 0, "export traces for a scan index")
	cmd.Flags().BoolVar(&combineAll, "all", false, "combine all traces into one table")

	return cmd
}
