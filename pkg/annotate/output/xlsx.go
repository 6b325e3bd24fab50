package output

import (
	"fmt"
	"io"

	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"
	"github.com/xuri/excelize/v2"
)

const (
	// BoardSheet holds the annotated grid, one board cell per worksheet cell.
	BoardSheet = "Board"
	// SummarySheet holds board dimensions and mine count.
	SummarySheet = "Summary"
)

// ToXLSX builds a workbook for a result. Mines are written as the mine marker,
// counts as numbers, and blank cells are left empty.
// The caller owns the returned file and must Close it.
func ToXLSX(res *models.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", BoardSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeBoard(f, res); err != nil {
		f.Close()
		return nil, fmt.Errorf("board sheet: %w", err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, res); err != nil {
		f.Close()
		return nil, fmt.Errorf("summary sheet: %w", err)
	}

	return f, nil
}

// WriteXLSX writes the workbook for a result to w.
func WriteXLSX(res *models.Result, w io.Writer) error {
	f, err := ToXLSX(res)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveXLSX writes the workbook for a result to path.
func SaveXLSX(res *models.Result, path string) error {
	f, err := ToXLSX(res)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

func writeBoard(f *excelize.File, res *models.Result) error {
	mine := byte('*')
	if res.Mine != "" {
		mine = res.Mine[0]
	}

	for rowIdx, row := range res.Rows {
		for colIdx := 0; colIdx < len(row); colIdx++ {
			var value interface{}
			switch b := row[colIdx]; {
			case b == mine:
				value = string(b)
			case b >= '1' && b <= '8':
				value = int(b - '0')
			default:
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(BoardSheet, cellName, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, res *models.Result) error {
	rows := [][]interface{}{
		{"width", res.Width},
		{"height", res.Height},
		{"mines", res.Mines},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cellName, &row); err != nil {
			return err
		}
	}
	return nil
}
