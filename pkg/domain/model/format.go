package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Format is an output format of a dashboard render pass
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
)

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// ContentType returns the HTTP content type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat parses a format name, case insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatHTML, FormatJSON, FormatText, FormatXLSX:
		return f, nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "unknown format", goerr.V("format", s))
	}
}
