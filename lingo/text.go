package lingo

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// DecodeText turns a raw string constant (Mac Roman, as Director writes them)
// into NFC-normalised UTF-8. Lingo uses bare CR for line breaks; those are
// kept as-is.
func DecodeText(raw []byte) string {
	b, err := charmap.Macintosh.NewDecoder().Bytes(raw)
	if err != nil {
		// every byte maps in Mac Roman, but just in case
		return string(raw)
	}
	return norm.NFC.String(string(b))
}

// StringFromRaw decodes raw and wraps it as a string datum.
func StringFromRaw(raw []byte) *Datum {
	return String(DecodeText(raw))
}
