package export

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// MIMEPDF is the content type served for PDF downloads.
const MIMEPDF = "application/pdf"

// Letterhead is the fixed three-line heading printed above every report title.
type Letterhead struct {
	Organization string
	Division     string
	System       string
}

const (
	pdfMargin    = 10.0
	rowHeight    = 7.0
	headerHeight = 8.0
)

// PDF renders a report table as a landscape A4 document: three-line
// letterhead, title and optional subtitle, then the table with grid lines on
// every cell, a bold shaded header row repeated on each page, text columns
// left-aligned and numeric columns right-aligned. When the table carries a
// grand-total row it is rendered bold with its label centered. A zero-row
// table still produces a valid document with the header row only.
func PDF(table domain.ReportTable, lh Letterhead, title, subtitle string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*pdfMargin
	breakAt := pageH - pdfMargin - rowHeight

	drawLetterhead(pdf, lh, title, subtitle)

	widths := fitColumnWidths(table, usableW)

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(242, 242, 242)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(128, 128, 128)
		for i, col := range table.Columns {
			pdf.CellFormat(widths[i], headerHeight, col.Title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	pdf.SetFont("Arial", "", 8)
	for rowIdx, row := range table.Rows {
		if pdf.GetY() > breakAt {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 8)
		}

		grandTotal := table.HasGrandTotal && rowIdx == len(table.Rows)-1
		if grandTotal {
			drawGrandTotalRow(pdf, table, row, widths)
			continue
		}

		for colIdx := range table.Columns {
			align := "R"
			if !columnNumeric(table, colIdx) {
				align = "L"
			}
			pdf.CellFormat(widths[colIdx], rowHeight, CellString(cellAt(row, colIdx)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawLetterhead(pdf *gofpdf.Fpdf, lh Letterhead, title, subtitle string) {
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 7, lh.Organization, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, lh.Division, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, lh.System, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, title, "", 1, "C", false, 0, "")
	if subtitle != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 5, subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
}

// drawGrandTotalRow renders the total row bold, with the label centered in
// the dimension column and the totals aligned like their data cells.
func drawGrandTotalRow(pdf *gofpdf.Fpdf, table domain.ReportTable, row []any, widths []float64) {
	pdf.SetFont("Arial", "B", 8)

	pdf.CellFormat(widths[0], rowHeight, CellString(cellAt(row, 0)), "1", 0, "C", false, 0, "")

	for colIdx := 1; colIdx < len(table.Columns); colIdx++ {
		align := "R"
		if !columnNumeric(table, colIdx) {
			align = "L"
		}
		pdf.CellFormat(widths[colIdx], rowHeight, CellString(cellAt(row, colIdx)), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)
}

// fitColumnWidths distributes the usable page width across columns in
// proportion to the 90th-percentile rendered string length of their data
// cells, so wide text columns get room without any column collapsing entirely.
// The lower clamp covers empty columns.
func fitColumnWidths(table domain.ReportTable, usableW float64) []float64 {
	if len(table.Columns) == 0 {
		return nil
	}

	weights := make([]float64, len(table.Columns))
	total := 0.0
	for colIdx := range table.Columns {
		lengths := make([]int, 0, len(table.Rows))
		for _, row := range table.Rows {
			lengths = append(lengths, len(CellString(cellAt(row, colIdx))))
		}
		w := float64(minColWidth)
		if len(lengths) > 0 {
			sort.Ints(lengths)
			p90 := lengths[int(math.Floor(0.9*float64(len(lengths)-1)))]
			w = float64(p90)
		}
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		weights[colIdx] = w
		total += w
	}

	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = usableW * w / total
	}
	return widths
}
