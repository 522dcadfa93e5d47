package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w     io.Writer
	table *Table
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(table *Table) error {
	e.table = table
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildTableData(), "", "  ")
}

type jsonTable struct {
	Rows    int          `json:"rows"`
	Columns []jsonColumn `json:"columns"`
}

type jsonColumn struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func (e *JSONEncoder) buildTableData() jsonTable {
	data := jsonTable{
		Rows:    e.table.Rows(),
		Columns: make([]jsonColumn, len(e.table.Columns)),
	}
	for i, col := range e.table.Columns {
		data.Columns[i] = jsonColumn{Name: col.Name, Values: col.Values}
	}
	return data
}
