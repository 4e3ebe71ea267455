// Package extractors turns uploaded file bytes into raw rows. It knows file
// formats but nothing about what the columns mean.
package extractors

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the physical layout of an uploaded file.
type Format string

const (
	FormatOFX       Format = "ofx"
	FormatDelimited Format = "csv"
	FormatXLSX      Format = "xlsx"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("empty file")
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat decides how a file must be read from its name and leading
// bytes. It runs before any parsing so callers can refuse a file up front.
func DetectFormat(filename string, data []byte) (Format, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return "", fmt.Errorf("%w: legacy binary workbook %q, save it as .xlsx", ErrUnsupportedFileType, filename)
	case bytes.HasPrefix(data, zipMagic):
		if ext == "" || ext == ".xlsx" || ext == ".xlsm" {
			return FormatXLSX, nil
		}
		return "", fmt.Errorf("%w: %q is a zip archive", ErrUnsupportedFileType, filename)
	case ext == ".xlsx" || ext == ".xlsm":
		return "", fmt.Errorf("%w: %q is not a valid workbook", ErrUnsupportedFileType, filename)
	case ext == ".ofx" || ext == ".qfx" || looksLikeOFX(data):
		return FormatOFX, nil
	case ext == ".csv" || ext == ".txt" || ext == "":
		return FormatDelimited, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filename)
}

func looksLikeOFX(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	upper := bytes.ToUpper(head)
	return bytes.Contains(upper, []byte("OFXHEADER")) || bytes.Contains(upper, []byte("<OFX>"))
}
