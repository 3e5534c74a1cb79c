package report

import (
	"context"
	"strings"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	dErrors "retireplan/pkg/domain-errors"
)

// PDFConverter renders HTML to PDF with the wkhtmltopdf binary.
type PDFConverter struct{}

// NewPDFConverter creates a converter. A non-empty binPath pins the wkhtmltopdf
// executable; otherwise it is looked up on PATH and next to the server binary.
// The path is process-wide in the underlying library.
func NewPDFConverter(binPath string) *PDFConverter {
	if binPath != "" {
		wkhtmltopdf.SetPath(binPath)
	}
	return &PDFConverter{}
}

// Available reports whether the wkhtmltopdf binary can be located.
func (p *PDFConverter) Available(_ context.Context) error {
	if _, err := wkhtmltopdf.NewPDFGenerator(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "wkhtmltopdf not found")
	}
	return nil
}

// Convert writes the PDF rendering of html to path.
func (p *PDFConverter) Convert(ctx context.Context, html string, path string) error {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "wkhtmltopdf not found")
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err := pdfg.CreateContext(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "wkhtmltopdf conversion failed")
	}
	if err := pdfg.WriteFile(path); err != nil {
		return dErrors.Wrap(err, dErrors.CodeRender, "failed to write report")
	}
	return nil
}

var _ Converter = (*PDFConverter)(nil)
