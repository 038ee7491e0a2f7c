// Package export turns generated text into a downloadable PDF byte stream.
// Layout is plain text placement: long lines wrap at the page width and page
// breaks happen wherever the text runs out of room, with no reflow of
// semantic structure.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ErrExportFailed wraps any PDF write failure into one generic category.
var ErrExportFailed = errors.New("export failed")

// Options control page layout. Unrecognized values fall back to defaults.
type Options struct {
	PageSize     string  // "A4", "Letter" or "Legal"
	Font         string  // "Arial", "Helvetica", "Times" or "Courier"
	FontSize     float64 // points
	MarginMm     float64
	LineHeightMm float64
	Title        string
}

// DefaultOptions returns the layout the original exports used.
func DefaultOptions() Options {
	return Options{
		PageSize:     "A4",
		Font:         "Arial",
		FontSize:     11,
		MarginMm:     10,
		LineHeightMm: 5,
	}
}

// PDF lays the text out on paginated pages and returns the byte stream.
// Characters outside the core-font codepage are substituted rather than
// failing the whole document.
func PDF(text string, opts Options) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrExportFailed)
	}
	opts = normalize(opts)

	pdf := fpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetCompression(false)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	pdf.SetMargins(opts.MarginMm, opts.MarginMm, opts.MarginMm)
	pdf.SetAutoPageBreak(true, opts.MarginMm)
	pdf.AddPage()
	pdf.SetFont(opts.Font, "", opts.FontSize)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, opts.LineHeightMm, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrExportFailed)
	}
	return buf.Bytes(), nil
}

func normalize(opts Options) Options {
	def := DefaultOptions()

	switch strings.ToUpper(strings.TrimSpace(opts.PageSize)) {
	case "A4":
		opts.PageSize = "A4"
	case "LETTER":
		opts.PageSize = "Letter"
	case "LEGAL":
		opts.PageSize = "Legal"
	default:
		opts.PageSize = def.PageSize
	}

	switch strings.ToLower(strings.TrimSpace(opts.Font)) {
	case "arial":
		opts.Font = "Arial"
	case "helvetica":
		opts.Font = "Helvetica"
	case "times":
		opts.Font = "Times"
	case "courier":
		opts.Font = "Courier"
	default:
		opts.Font = def.Font
	}

	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}
	if opts.MarginMm <= 0 {
		opts.MarginMm = def.MarginMm
	}
	if opts.LineHeightMm <= 0 {
		opts.LineHeightMm = def.LineHeightMm
	}
	return opts
}
