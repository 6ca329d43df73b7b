// Package encoding detects the character set of an input file and converts
// between it and UTF-8.
package encoding

import (
	"fmt"
	"strings"

	"fjacquet/currency-csv/internal/parsererror"

	"golang.org/x/net/html/charset"
	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when detection gives nothing usable and for output.
const DefaultEncoding = "utf-8"

// sniffLimit bounds how much of the input the detector looks at.
const sniffLimit = 10 << 20

// Detection is the outcome of sniffing a byte stream.
type Detection struct {
	Name    string
	Certain bool
}

// Detector guesses the character encoding of raw bytes.
type Detector interface {
	Detect(data []byte) (Detection, error)
}

// CharsetDetector sniffs BOMs and UTF-8 validity, guessing windows-1252
// for anything else.
type CharsetDetector struct{}

// NewCharsetDetector returns the default detector.
func NewCharsetDetector() *CharsetDetector {
	return &CharsetDetector{}
}

// Detect implements Detector.
func (CharsetDetector) Detect(data []byte) (Detection, error) {
	if len(data) > sniffLimit {
		data = data[:sniffLimit]
	}
	_, name, certain := charset.DetermineEncoding(data, "text/csv")
	return Detection{Name: name, Certain: certain}, nil
}

// Resolve picks the encoding to read data with. An override always wins;
// an uncertain guess on pure ASCII input gives way to fallback.
func Resolve(d Detector, data []byte, override, fallback string) (string, error) {
	if override != "" {
		return override, nil
	}
	if fallback == "" {
		fallback = DefaultEncoding
	}
	if d == nil {
		return fallback, nil
	}
	det, err := d.Detect(data)
	if err != nil {
		return "", fmt.Errorf("failed to detect encoding: %w", err)
	}
	if det.Name == "" || (!det.Certain && isASCII(data)) {
		return fallback, nil
	}
	if _, _, err := lookup(det.Name); err != nil {
		return fallback, nil
	}
	return det.Name, nil
}

// Decode converts data in the named encoding to a UTF-8 string. A leading
// byte order mark is honoured and dropped.
func Decode(data []byte, name string) (string, error) {
	enc, _, err := lookup(name)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s input: %w", name, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 text to the named encoding.
func Encode(text, name string) ([]byte, error) {
	enc, _, err := lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode output as %s: %w", name, err)
	}
	return out, nil
}

// Canonical returns the canonical name of an encoding label.
func Canonical(name string) (string, error) {
	_, canonical, err := lookup(name)
	return canonical, err
}

func lookup(name string) (textencoding.Encoding, string, error) {
	enc, canonical := charset.Lookup(strings.TrimSpace(name))
	if enc == nil {
		return nil, "", &parsererror.ConfigurationError{Reason: fmt.Sprintf("unknown character encoding %q", name)}
	}
	return enc, canonical, nil
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
