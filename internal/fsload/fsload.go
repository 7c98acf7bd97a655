// Package fsload reads viewer documents: it rejects binary content, decodes
// BOM-marked UTF-8/UTF-16 into UTF-8 and NFC-normalizes the result so span
// offsets are stable across platforms that emit decomposed forms.
package fsload

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultLimit caps how much of a document the viewer loads.
	DefaultLimit = 4 << 20

	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

type byteOrderMark int

const (
	bomNone byteOrderMark = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

// LoadFile reads at most limit bytes of path and returns its decoded,
// normalized text. Binary content is refused.
func LoadFile(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	text, err := LoadReader(f, limit)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// LoadReader reads at most limit bytes from r and returns its decoded,
// normalized text.
func LoadReader(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	content, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return "", err
	}
	if !isText(content) {
		return "", fmt.Errorf("binary content")
	}
	return norm.NFC.String(decode(content)), nil
}

func isText(content []byte) bool {
	if len(content) == 0 {
		return true
	}
	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if detectBOM(sample) != bomNone {
		return true
	}
	for _, b := range sample {
		if b == 0x00 {
			return false
		}
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectBOM(sample []byte) byteOrderMark {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return bomUTF8
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return bomUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return bomUTF16BE
		}
	}
	return bomNone
}

func decode(content []byte) string {
	switch detectBOM(content) {
	case bomUTF8:
		return string(content[3:])
	case bomUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
