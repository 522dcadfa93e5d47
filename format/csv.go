package format

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
)

type CSVEncoder struct {
	w     io.Writer
	table *Table
}

func NewCSVEncoder(w io.Writer) *CSVEncoder {
	return &CSVEncoder{w: w}
}

func (e *CSVEncoder) Encode(table *Table) error {
	e.table = table
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *CSVEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(e.table.Columns))
	for i, col := range e.table.Columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(e.table.Columns))
	for r := 0; r < e.table.Rows(); r++ {
		for i, col := range e.table.Columns {
			row[i] = strconv.FormatFloat(col.Values[r], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
