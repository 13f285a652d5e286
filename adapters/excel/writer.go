package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dealqa/domain/deal"

	"github.com/xuri/excelize/v2"
)

// Report column order is fixed: identifier, verdict, commentary.
var reportColumns = []string{"Deal ID", "Status", "Comments"}

// ReportWriter writes validation outcomes to an Excel or CSV report,
// chosen by the output path's extension.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a writer targeting path, overwriting any
// existing file there.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// WriteReport serializes the outcomes in input order.
func (w *ReportWriter) WriteReport(outcomes []deal.Outcome) error {
	if strings.ToLower(filepath.Ext(w.path)) == ".csv" {
		return w.writeCSV(outcomes)
	}
	return w.writeXLSX(outcomes)
}

func (w *ReportWriter) writeXLSX(outcomes []deal.Outcome) error {
	f := excelize.NewFile()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for i, h := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, outcome := range outcomes {
		rowIdx := r + 2
		for c, v := range []string{outcome.DealID, string(outcome.Status), outcome.Comments} {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", w.path, err)
	}
	return nil
}

func (w *ReportWriter) writeCSV(outcomes []deal.Outcome) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create report at %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(reportColumns); err != nil {
		return err
	}
	for _, outcome := range outcomes {
		if err := cw.Write([]string{outcome.DealID, string(outcome.Status), outcome.Comments}); err != nil {
			return err
		}
	}
	return cw.Error()
}
