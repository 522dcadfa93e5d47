package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineEncoder writes one tab-separated line per table row, header first.
type LineEncoder struct {
	w     io.Writer
	table *Table
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(table *Table) error {
	e.table = table
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for i, col := range e.table.Columns {
		if i > 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(col.Name)
	}
	sb.WriteByte('\n')

	for r := 0; r < e.table.Rows(); r++ {
		for i, col := range e.table.Columns {
			if i > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(strconv.FormatFloat(col.Values[r], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return []byte(sb.String()), nil
}

// NewEncoder returns the encoder registered for name, or an error listing the
// supported names.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "csv":
		return NewCSVEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "text":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected csv, json or text)", name)
	}
}
