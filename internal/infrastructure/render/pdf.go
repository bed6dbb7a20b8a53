package render

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"NewsAnalyst/internal/ports"
)

// PDFRenderer writes the final report into a paginated A4 document.
type PDFRenderer struct {
	outPath string
}

var _ ports.Renderer = (*PDFRenderer)(nil)

// NewPDFRenderer targets the given output path.
func NewPDFRenderer(outPath string) *PDFRenderer {
	return &PDFRenderer{outPath: outPath}
}

// Render lays out the report body followed by the consulted sources and the
// accumulated errors, and returns the artifact path.
func (r *PDFRenderer) Render(report string, sources, errs []string) (string, error) {
	if r.outPath == "" {
		return "", fmt.Errorf("renderer output path is empty")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("News Analysis Report", false)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("News Analysis Report"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, tr(report), "", "L", false)

	writeSection(pdf, tr, "Sources", sources, "No sources consulted")
	writeSection(pdf, tr, "Errors", errs, "No errors recorded")

	if err := pdf.OutputFileAndClose(r.outPath); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	return r.outPath, nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title string, lines []string, empty string) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if len(lines) == 0 {
		pdf.MultiCell(0, 5, tr(empty), "", "L", false)
		return
	}

	var body strings.Builder
	for _, line := range lines {
		body.WriteString("- ")
		body.WriteString(line)
		body.WriteString("\n")
	}
	pdf.MultiCell(0, 5, tr(body.String()), "", "L", false)
}
