// Package format turns parsed traces into rectangular tables and serializes
// them. It is a read-only collaborator of the esrp package: tables are built
// from an already parsed File and never feed back into it.
package format

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/emclabs/datparser/esrp"
)

var log = commonlog.GetLogger("datparser.format")

// Column is one named value sequence of a Table.
type Column struct {
	Name   string
	Values []float64
}

// Table is a rectangular view over trace data. All columns have the same
// length; an empty table has no columns.
type Table struct {
	Columns []Column
}

// Rows returns the number of rows, which is the shared column length.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Options selects which traces to tabulate.
//
// Trace picks a single trace by index. CombineAll merges every selected trace
// into one table sharing the first trace's x-axis. Scan bounds-checks the scan
// index but still selects all traces: the file format does not record which
// scan a trace belongs to, so no trace filtering is possible.
type Options struct {
	Trace      *int
	Scan       *int
	CombineAll bool
}

// Build produces a table from f according to opts. A file without traces
// yields an empty table.
func Build(f *esrp.File, opts Options) (*Table, error) {
	if opts.Trace != nil && opts.CombineAll {
		return nil, &esrp.Error{
			Kind:    esrp.KindUnsupported,
			Message: "cannot combine all traces and select a single trace at once",
		}
	}

	if opts.Scan != nil {
		if _, err := f.ScanAt(*opts.Scan); err != nil {
			return nil, err
		}
	}

	if f.TraceCount() == 0 {
		return &Table{}, nil
	}

	if opts.Trace != nil {
		trace, err := f.TraceAt(*opts.Trace)
		if err != nil {
			return nil, err
		}
		return singleTrace(trace), nil
	}

	if opts.CombineAll {
		return combined(f.Traces), nil
	}
	return singleTrace(f.Traces[0]), nil
}

// singleTrace tabulates one trace as two columns named after its axis units.
func singleTrace(trace *esrp.Trace) *Table {
	return &Table{Columns: []Column{
		{Name: trace.XUnit(), Values: trace.Data.X},
		{Name: trace.YUnit(), Values: trace.Data.Y},
	}}
}

// combined merges traces into one table. The first trace's x-sequence is the
// common axis; a trace whose sample count disagrees with that axis is skipped
// with a diagnostic rather than failing the export.
func combined(traces []*esrp.Trace) *Table {
	base := traces[0]
	table := &Table{Columns: []Column{
		{Name: base.XUnit(), Values: base.Data.X},
	}}

	for i, trace := range traces {
		if len(trace.Data.Y) != len(base.Data.X) {
			log.Warningf("skipping trace %d: %d samples do not match the %d-sample axis",
				i, len(trace.Data.Y), len(base.Data.X))
			continue
		}
		name := fmt.Sprintf("Trace %d %s", i, trace.YUnit())
		if trace.Name() != "" {
			name = trace.Name() + " " + trace.YUnit()
		}
		table.Columns = append(table.Columns, Column{Name: name, Values: trace.Data.Y})
	}
	return table
}
