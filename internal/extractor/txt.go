package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExtractTXT decodes a plain-text file, trying a fixed ordered list of
// encodings and falling back to a permissive decode that replaces
// undecodable bytes. The decoded text is returned verbatim; callers that
// need normalization do it themselves.
func ExtractTXT(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty text file")
	}

	return decodeText(data), nil
}

func decodeText(data []byte) string {
	// BOM-tagged inputs are unambiguous.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:])
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		if s, ok := decodeUTF16(data, unicode.LittleEndian); ok {
			return s
		}
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		if s, ok := decodeUTF16(data, unicode.BigEndian); ok {
			return s
		}
	}

	if utf8.Valid(data) {
		return string(data)
	}

	// BOM-less UTF-16 shows up as alternating NUL bytes.
	if looksUTF16(data, unicode.LittleEndian) {
		if s, ok := decodeUTF16(data, unicode.LittleEndian); ok {
			return s
		}
	}
	if looksUTF16(data, unicode.BigEndian) {
		if s, ok := decodeUTF16(data, unicode.BigEndian); ok {
			return s
		}
	}

	if s, ok := decodeCharmap(data, charmap.Windows1252); ok {
		return s
	}
	if s, ok := decodeCharmap(data, charmap.ISO8859_1); ok {
		return s
	}

	// Last resort: keep what is valid, replace the rest.
	return strings.ToValidUTF8(string(data), "�")
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, bool) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func decodeCharmap(data []byte, cm *charmap.Charmap) (string, bool) {
	decoded, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// looksUTF16 samples the input for the NUL-byte pattern of ASCII-heavy
// UTF-16 text in the given byte order.
func looksUTF16(data []byte, endianness unicode.Endianness) bool {
	if len(data) < 4 || len(data)%2 != 0 {
		return false
	}

	sample := len(data)
	if sample > 512 {
		sample = 512
	}

	nulOffset := 1
	if endianness == unicode.BigEndian {
		nulOffset = 0
	}

	nuls := 0
	pairs := 0
	for i := 0; i+1 < sample; i += 2 {
		pairs++
		if data[i+nulOffset] == 0x00 {
			nuls++
		}
	}

	return pairs > 0 && float64(nuls)/float64(pairs) > 0.5
}
