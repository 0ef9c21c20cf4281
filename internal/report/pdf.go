package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"coursecat/internal/domain"
)

// Receipt renders a one-page PDF acknowledging sub and writes it to path.
func Receipt(path string, sub domain.Submission) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Submission receipt", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Submission receipt", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Receipt", sub.ID.String()},
		{"Course", fmt.Sprintf("%s (#%d)", sub.Course, sub.CourseID)},
		{"Assignment", sub.Title},
		{"File", orDash(sub.File)},
		{"Submitted", sub.SubmittedAt},
	}
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 8, r[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(r[1]), "", 1, "L", false, 0, "")
	}

	if sub.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(sub.Notes), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return writeFile(path, 0o644, func(w io.Writer) error {
		return pdf.Output(w)
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
