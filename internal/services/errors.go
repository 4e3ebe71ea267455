package services

import (
	"errors"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/extractors"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/repositories"
)

var (
	// ErrUnsupportedFileType is returned before any parsing when a file is
	// neither OFX, delimited text nor an .xlsx workbook.
	ErrUnsupportedFileType = extractors.ErrUnsupportedFileType
	ErrNotFound            = repositories.ErrNotFound
	ErrInvalidInput        = errors.New("invalid input")
)

// ErrEmptyFile is returned for an upload with no content.
var ErrEmptyFile = extractors.ErrEmptyFile
