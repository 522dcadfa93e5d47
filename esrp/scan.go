package esrp

// Scan is one "Scan <n>:" configuration block. Name is the section label with
// the trailing colon stripped. Scans do not own traces; the format lays both
// out as flat sibling sequences.
type Scan struct {
	Name       string
	Parameters Metadata
}

func newScan(name string) *Scan {
	return &Scan{Name: name, Parameters: Metadata{}}
}
