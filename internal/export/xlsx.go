package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jakiurshovon/Purchase-Web-App/internal/core/domain"
)

// MIMESpreadsheet is the content type served for XLSX downloads.
const MIMESpreadsheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	minColWidth = 8
	maxColWidth = 40
)

const numberFormat = "#,##0.00"

// Spreadsheet renders a report table as a single-sheet XLSX workbook: bold
// header row, one row per table row, text columns left-aligned and numeric
// columns right-aligned with a two-decimal thousands format. Column widths are
// sized to the 90th-percentile string length of each column's values, clamped
// to [8, 40]. A zero-row table produces a valid workbook with only the header.
func Spreadsheet(table domain.ReportTable, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheetName, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text style: %w", err)
	}
	numFmt := numberFormat
	numericStyle, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create numeric style: %w", err)
	}

	for colIdx, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return nil, fmt.Errorf("invalid header coordinate: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col.Title); err != nil {
			return nil, fmt.Errorf("failed to write header cell %s: %w", cell, err)
		}
	}
	if len(table.Columns) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(table.Columns), 1)
		if err := f.SetCellStyle(sheetName, first, last, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header row: %w", err)
		}
	}

	for rowIdx, row := range table.Rows {
		for colIdx := range table.Columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("invalid cell coordinate: %w", err)
			}
			value := cellAt(row, colIdx)
			if value != nil {
				if err := f.SetCellValue(sheetName, cell, value); err != nil {
					return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
				}
			}
			style := numericStyle
			if !columnNumeric(table, colIdx) {
				style = textStyle
			}
			if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
				return nil, fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}

	for colIdx := range table.Columns {
		name, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return nil, fmt.Errorf("invalid column index %d: %w", colIdx, err)
		}
		width := columnWidth(table, colIdx)
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellAt tolerates short rows: a missing trailing cell reads as nil.
func cellAt(row []any, colIdx int) any {
	if colIdx >= len(row) {
		return nil
	}
	return row[colIdx]
}

// columnNumeric falls back to numeric alignment when the column tag is out of
// range or otherwise malformed.
func columnNumeric(table domain.ReportTable, colIdx int) bool {
	if colIdx >= len(table.Columns) {
		return true
	}
	return table.Columns[colIdx].Numeric
}

// columnWidth sizes a column to the 90th percentile of its rendered cell
// string lengths plus padding, clamped to [8, 40] character units. Only data
// cells are sampled; the lower clamp covers empty columns.
func columnWidth(table domain.ReportTable, colIdx int) float64 {
	lengths := make([]int, 0, len(table.Rows))
	for _, row := range table.Rows {
		lengths = append(lengths, len(CellString(cellAt(row, colIdx))))
	}
	if len(lengths) == 0 {
		return minColWidth
	}
	sort.Ints(lengths)
	p90 := lengths[int(math.Floor(0.9*float64(len(lengths)-1)))]
	width := float64(p90 + 3)
	if width < minColWidth {
		width = minColWidth
	}
	if width > maxColWidth {
		width = maxColWidth
	}
	return width
}
