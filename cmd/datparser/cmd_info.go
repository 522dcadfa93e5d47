package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emclabs/datparser/esrp"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show a summary of an ESRP file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := esrp.ParseFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println(file)

			if len(file.Metadata) > 0 {
				fmt.Println()
				keys := make([]string, 0, len(file.Metadata))
				for key := range file.Metadata {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Printf("%s: %s\n", key, strings.Join(file.Metadata[key], "; "))
				}
			}

			for i, trace := range file.Traces {
				fmt.Printf("\nTrace %d: %s (%d points, %s over %s)\n",
					i, trace.DisplayName(), trace.Data.PointCount(), trace.YUnit(), trace.XUnit())
			}
			return nil
		},
	}
}
