package esrp

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTraceData(t *testing.T) {
	t.Run("equal lengths", func(t *testing.T) {
		data, err := NewTraceData([]float64{1, 2, 3}, []float64{-10, -20, -30})
		if err != nil {
			t.Fatalf("NewTraceData() error: %v", err)
		}
		if data.PointCount() != 3 {
			t.Errorf("PointCount() = %d, want 3", data.PointCount())
		}
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := NewTraceData([]float64{1, 2, 3}, []float64{-10})
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if !IsKind(err, KindValidation) {
			t.Errorf("expected KindValidation, got %v", err)
		}
	})
}

func TestTraceDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		want     string
	}{
		{"explicit name", Metadata{"Trace Name": {"MaxPeak"}, "y-Unit": {"dBm"}}, "MaxPeak"},
		{"empty name falls back", Metadata{"Trace Name": {}, "y-Unit": {"dBm"}}, "Trace dBm"},
		{"no name", Metadata{"y-Unit": {"dBµV"}}, "Trace dBµV"},
		{"no name, no unit", Metadata{}, "Trace Y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := &Trace{Metadata: tt.metadata}
			if got := trace.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTraceUnitDefaults(t *testing.T) {
	trace := &Trace{Metadata: Metadata{}}
	if got := trace.XUnit(); got != "X" {
		t.Errorf("XUnit() = %q, want %q", got, "X")
	}
	if got := trace.YUnit(); got != "Y" {
		t.Errorf("YUnit() = %q, want %q", got, "Y")
	}
}

func TestIndexAccessors(t *testing.T) {
	f, err := Parse(strings.NewReader("Scan 1:\nStart;150000;\nTRACE 1:\nValues;1;\n150000;6.15;\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	t.Run("valid indices", func(t *testing.T) {
		if _, err := f.ScanParameters(0); err != nil {
			t.Errorf("ScanParameters(0): %v", err)
		}
		if _, err := f.TraceMetadata(0); err != nil {
			t.Errorf("TraceMetadata(0): %v", err)
		}
		if _, err := f.TraceData(0); err != nil {
			t.Errorf("TraceData(0): %v", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := f.ScanAt(5)
		if err == nil {
			t.Fatal("expected error for scan index 5, got nil")
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if e.Kind != KindIndexOutOfRange {
			t.Errorf("Kind = %v, want KindIndexOutOfRange", e.Kind)
		}
		if e.Requested != 5 || e.Available != 1 {
			t.Errorf("Requested/Available = %d/%d, want 5/1", e.Requested, e.Available)
		}
	})

	t.Run("negative index", func(t *testing.T) {
		if _, err := f.TraceAt(-1); !IsKind(err, KindIndexOutOfRange) {
			t.Errorf("expected KindIndexOutOfRange, got %v", err)
		}
	})
}

func TestValuesFirst(t *testing.T) {
	if got := (Values{"a", "b"}).First(); got != "a" {
		t.Errorf("First() = %q, want %q", got, "a")
	}
	if got := (Values{}).First(); got != "" {
		t.Errorf("First() = %q, want empty", got)
	}
}

func TestFileString(t *testing.T) {
	f, err := ParseFile("testdata/sample.dat")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	s := f.String()
	if !strings.Contains(s, "sample.dat") {
		t.Errorf("String() = %q, want the file name in it", s)
	}
	if !strings.Contains(s, "Scans: 2, Traces: 2") {
		t.Errorf("String() = %q, want scan and trace counts in it", s)
	}
}
