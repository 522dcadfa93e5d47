// Package esrp parses ESRP spectrum analyzer trace export files, a
// semicolon-delimited line-oriented text format combining instrument
// metadata, scan configurations and trace sample data in one flat stream.
//
// A parsed File owns three things: the file-global metadata scope, the
// ordered scan sequence and the ordered trace sequence. Parsing is
// all-or-nothing: any structural error discards the whole aggregate.
package esrp

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is a fully parsed ESRP file. Path is empty when the source was an
// in-memory reader rather than a file on disk.
type File struct {
	Path     string
	Metadata Metadata
	Scans    []*Scan
	Traces   []*Trace
}

// ScanCount returns the number of scan configuration blocks.
func (f *File) ScanCount() int {
	return len(f.Scans)
}

// TraceCount returns the number of trace blocks.
func (f *File) TraceCount() int {
	return len(f.Traces)
}

// ScanAt returns the scan at the given zero-based index.
func (f *File) ScanAt(index int) (*Scan, error) {
	if index < 0 || index >= len(f.Scans) {
		return nil, indexError("scan index", index, len(f.Scans))
	}
	return f.Scans[index], nil
}

// TraceAt returns the trace at the given zero-based index.
func (f *File) TraceAt(index int) (*Trace, error) {
	if index < 0 || index >= len(f.Traces) {
		return nil, indexError("trace index", index, len(f.Traces))
	}
	return f.Traces[index], nil
}

// ScanParameters returns the parameter scope of the scan at index.
func (f *File) ScanParameters(index int) (Metadata, error) {
	scan, err := f.ScanAt(index)
	if err != nil {
		return nil, err
	}
	return scan.Parameters, nil
}

// TraceMetadata returns the metadata scope of the trace at index.
func (f *File) TraceMetadata(index int) (Metadata, error) {
	trace, err := f.TraceAt(index)
	if err != nil {
		return nil, err
	}
	return trace.Metadata, nil
}

// TraceData returns the sample data of the trace at index.
func (f *File) TraceData(index int) (TraceData, error) {
	trace, err := f.TraceAt(index)
	if err != nil {
		return TraceData{}, err
	}
	return trace.Data, nil
}

// Name returns the base name of the source file, or the empty string for
// in-memory sources.
func (f *File) Name() string {
	if f.Path == "" {
		return ""
	}
	return filepath.Base(f.Path)
}

// Size returns the source file size in bytes, or -1 when unavailable.
func (f *File) Size() int64 {
	if f.Path == "" {
		return -1
	}
	info, err := os.Stat(f.Path)
	if err != nil {
		return -1
	}
	return info.Size()
}

func (f *File) String() string {
	return fmt.Sprintf("ESRP File: %s\nScans: %d, Traces: %d\nFile size: %d bytes",
		f.Name(), f.ScanCount(), f.TraceCount(), f.Size())
}
