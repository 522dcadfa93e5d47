package format

import (
	"encoding"

	"github.com/emclabs/datparser/esrp"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(table *Table) error
}

// Export builds a table from f per opts and writes it with enc. The encoder
// is an injected capability: a nil encoder fails at call time instead of
// being assumed present.
func Export(enc Encoder, f *esrp.File, opts Options) error {
	if enc == nil {
		return &esrp.Error{Kind: esrp.KindUnsupported, Message: "no export encoder configured"}
	}
	table, err := Build(f, opts)
	if err != nil {
		return err
	}
	return enc.Encode(table)
}
