package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dealqa/domain/deal"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV input files.
type DataReader struct {
	filePath  string
	fileType  string // "xlsx" or "csv"
	marker    string // header detection marker, matched case-insensitively
	headerRow int    // explicit 1-based header row; 0 means auto-detect
}

// NewDataReader creates a reader for filePath. The header row is located
// by scanning for a cell containing marker; headerRow overrides the scan
// with an explicit 1-based index when positive.
func NewDataReader(filePath, marker string, headerRow int) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, marker: marker, headerRow: headerRow}
}

// ReadSheet reads the input file into headers plus data rows.
func (r *DataReader) ReadSheet() (*deal.Sheet, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %s read (%d raw rows)", sheet, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV file read (%d raw rows)", len(rows))
	return rows, nil
}

// processRows locates the header row, trims header names, and converts
// everything below it into keyed data rows.
func (r *DataReader) processRows(rows [][]string) (*deal.Sheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file has no rows")
	}

	headerIdx := r.locateHeaderRow(rows)
	if headerIdx >= len(rows) {
		return nil, fmt.Errorf("header row %d is beyond the sheet (%d rows)", headerIdx+1, len(rows))
	}

	headerRow := rows[headerIdx]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []deal.Row
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(deal.Row)
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d data rows, header at row %d)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows), headerIdx+1)

	return &deal.Sheet{Headers: headers, Rows: dataRows}, nil
}

// locateHeaderRow returns the 0-based index of the header row: the
// explicit override when set, otherwise the first row containing the
// marker, otherwise row 0.
func (r *DataReader) locateHeaderRow(rows [][]string) int {
	if r.headerRow > 0 {
		return r.headerRow - 1
	}

	marker := strings.ToLower(r.marker)
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), marker) {
				log.Printf("[DataReader] Found headers at row %d", i+1)
				return i
			}
		}
	}

	log.Printf("[DataReader] Could not find %q header row, using first row", r.marker)
	return 0
}
