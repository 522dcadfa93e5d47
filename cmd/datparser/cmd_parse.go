package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emclabs/datparser/esrp"
)

func newParseCmd() *cobra.Command {
	var includeData bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an ESRP file and dump the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := esrp.ParseFile(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(buildFileData(file, includeData)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeData, "data", false, "include trace sample data in the output")

	return cmd
}

type jsonFile struct {
	Metadata esrp.Metadata `json:"metadata"`
	Scans    []jsonScan    `json:"scans"`
	Traces   []jsonTrace   `json:"traces"`
}

type jsonScan struct {
	Name       string        `json:"name"`
	Parameters esrp.Metadata `json:"parameters"`
}

type jsonTrace struct {
	Name       string        `json:"name"`
	XUnit      string        `json:"xUnit"`
	YUnit      string        `json:"yUnit"`
	PointCount int           `json:"pointCount"`
	Metadata   esrp.Metadata `json:"metadata"`
	X          []float64     `json:"x,omitempty"`
	Y          []float64     `json:"y,omitempty"`
}

func buildFileData(file *esrp.File, includeData bool) jsonFile {
	data := jsonFile{
		Metadata: file.Metadata,
		Scans:    make([]jsonScan, 0, file.ScanCount()),
		Traces:   make([]jsonTrace, 0, file.TraceCount()),
	}
	for _, scan := range file.Scans {
		data.Scans = append(data.Scans, jsonScan{Name: scan.Name, Parameters: scan.Parameters})
	}
	for _, trace := range file.Traces {
		jt := jsonTrace{
			Name:       trace.DisplayName(),
			XUnit:      trace.XUnit(),
			YUnit:      trace.YUnit(),
			PointCount: trace.Data.PointCount(),
			Metadata:   trace.Metadata,
		}
		if includeData {
			jt.X = trace.Data.X
			jt.Y = trace.Data.Y
		}
		data.Traces = append(data.Traces, jt)
	}
	return data
}
