package esrp

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeSource turns raw source bytes into text. UTF-8 is tried first; bytes
// that are not valid UTF-8 are decoded as ISO-8859-1. Both encodings accept
// byte sequences that are clearly not line-oriented text (ISO-8859-1 assigns
// a character to every byte value), so the decoded result is additionally
// required to be free of control characters other than TAB, CR and LF.
func decodeSource(data []byte) (string, error) {
	if utf8.Valid(data) && plausibleText(data) {
		return string(data), nil
	}

	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", newError(KindDecoding, "tried UTF-8 and ISO-8859-1", err)
	}
	if !plausibleText(text) {
		return "", newError(KindDecoding, "tried UTF-8 and ISO-8859-1: source is not text", nil)
	}
	return string(text), nil
}

func plausibleText(data []byte) bool {
	for _, r := range string(data) {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F) {
			return false
		}
	}
	return true
}
