package importer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
)

// Candidate encodings, tried in order when statistical detection is
// inconclusive. Latin-1 decodes any byte sequence, so it doubles as the
// safety net before the absolute UTF-8 fallback.
const (
	encUTF8    = "UTF-8"
	encUTF8Sig = "UTF-8-SIG"
	encLatin1  = "ISO-8859-1"
	encCP1252  = "windows-1252"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding guesses the character encoding of raw file content.
// The chardet verdict is preferred when it names an encoding we can
// decode; otherwise a trial-decode list is walked. Never fails: the
// absolute fallback is UTF-8.
func DetectEncoding(raw []byte) string {
	if result, err := chardet.NewTextDetector().DetectBest(raw); err == nil {
		switch result.Charset {
		case encUTF8, encLatin1, encCP1252:
			if bytes.HasPrefix(raw, utf8BOM) && result.Charset == encUTF8 {
				return encUTF8Sig
			}
			return result.Charset
		}
	}

	if bytes.HasPrefix(raw, utf8BOM) {
		return encUTF8Sig
	}
	if utf8.Valid(raw) {
		return encUTF8
	}
	return encLatin1
}

// DecodeText decodes raw bytes using the detected encoding.
func DecodeText(raw []byte) string {
	switch DetectEncoding(raw) {
	case encUTF8Sig:
		return string(bytes.TrimPrefix(raw, utf8BOM))
	case encLatin1:
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw); err == nil {
			return string(decoded)
		}
	case encCP1252:
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
			return string(decoded)
		}
	}
	return string(raw)
}

var delimiters = []rune{';', ',', '\t', '|'}

// DetectDelimiter returns the delimiter occurring most often in the
// first line of the sample. Ties and zero matches fall back to the
// semicolon.
func DetectDelimiter(sample string) rune {
	firstLine := sample
	if i := strings.IndexByte(sample, '\n'); i >= 0 {
		firstLine = sample[:i]
	}

	best := ';'
	maxCount := 0

	for _, d := range delimiters {
		if count := strings.Count(firstLine, string(d)); count > maxCount {
			maxCount = count
			best = d
		}
	}

	return best
}
