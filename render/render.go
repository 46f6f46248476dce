package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/htrsize/sizing"
)

// Format selects an output representation.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatTable, FormatHTML, FormatJSON} }

// Options tunes every renderer.
type Options struct {
	// Branches adds the parallel branch count column.
	Branches bool

	// Styled enables colours and bold headers in the terminal table.
	Styled bool
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write renders evals to w in format f.
func Write(w io.Writer, f Format, evals []sizing.Evaluation, opts Options) error {
	switch f {
	case FormatTable:
		return Table(w, evals, opts)
	case FormatHTML:
		return HTML(w, evals, opts)
	case FormatJSON:
		return JSON(w, evals, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
