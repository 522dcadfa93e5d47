package esrp

import "fmt"

// Metadata keys with dedicated accessors.
const (
	traceNameKey = "Trace Name"
	xUnitKey     = "x-Unit"
	yUnitKey     = "y-Unit"
)

// TraceData holds the paired sample sequences of one trace. X and Y always
// have the same length; samples keep their file order.
type TraceData struct {
	X []float64
	Y []float64
}

// NewTraceData builds a TraceData from two equally long sample sequences.
func NewTraceData(x, y []float64) (TraceData, error) {
	if len(x) != len(y) {
		return TraceData{}, newError(KindValidation,
			fmt.Sprintf("x and y must have the same length (%d != %d)", len(x), len(y)), nil)
	}
	return TraceData{X: x, Y: y}, nil
}

// PointCount returns the number of sample pairs.
func (d TraceData) PointCount() int {
	return len(d.X)
}

func (d *TraceData) append(x, y float64) {
	d.X = append(d.X, x)
	d.Y = append(d.Y, y)
}

// Trace is one "TRACE <n>:" block: descriptive metadata plus paired samples.
type Trace struct {
	Metadata Metadata
	Data     TraceData
}

func newTrace() *Trace {
	return &Trace{Metadata: Metadata{}}
}

// Name returns the explicit "Trace Name" metadata value, or the empty string
// when the trace is unnamed.
func (t *Trace) Name() string {
	return t.Metadata.First(traceNameKey, "")
}

// XUnit returns the x-axis unit, defaulting to "X".
func (t *Trace) XUnit() string {
	return t.Metadata.First(xUnitKey, "X")
}

// YUnit returns the y-axis unit, defaulting to "Y".
func (t *Trace) YUnit() string {
	return t.Metadata.First(yUnitKey, "Y")
}

// DisplayName returns the explicit trace name when present, otherwise a label
// synthesized from the y-axis unit.
func (t *Trace) DisplayName() string {
	if name := t.Name(); name != "" {
		return name
	}
	return "Trace " + t.YUnit()
}
