package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchdash/internal"

	"github.com/xuri/excelize/v2"
)

// File types understood by Reader
const (
	FileTypeCSV  = "csv"
	FileTypeXLSX = "xlsx"
)

var logger = internal.DefaultLogger.With("tabular")

// Reader handles reading CSV and Excel files into raw rows
type Reader struct {
	filePath string
	fileType string
}

// NewReader creates a reader; the file type follows the extension and defaults to CSV
func NewReader(filePath string) *Reader {
	fileType := FileTypeCSV
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		fileType = FileTypeXLSX
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// FileType returns "csv" or "xlsx"
func (r *Reader) FileType() string {
	return r.fileType
}

// Read reads the whole file. The first row is the header.
func (r *Reader) Read() (*Data, error) {
	logger.Debug("Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
		}
		return nil, fmt.Errorf("cannot access %s: %w", r.filePath, err)
	}

	start := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case FileTypeXLSX:
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	logger.Info("%s file read in %.2fms (%d rows)", strings.ToUpper(r.fileType), float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s file has no header row: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	return processRows(rows)
}

// readExcelRows reads the first sheet of a workbook
func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets: %s", r.filePath)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into Data, skipping blank lines
func processRows(rows [][]string) (*Data, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	seen := make(map[string]bool, len(headerRow))
	for i, header := range headerRow {
		name := strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
		if name != "" && seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		headers[i] = name
	}

	dataRows := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rowData := make(RawRow, len(headers))
		for j, cell := range row {
			if j < len(headers) && headers[j] != "" {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	logger.Debug("Processed %d columns, %d rows", len(headers), len(dataRows))
	return &Data{Headers: headers, Rows: dataRows}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
