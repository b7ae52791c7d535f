package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadRows reads the spreadsheet at path and returns the header row and the
// remaining data rows. sheet selects a worksheet by name or 0-based index;
// empty means the first sheet. CSV files ignore the sheet argument.
func LoadRows(path, sheet string) (headers []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, sheet)
	default:
		return nil, nil, fmt.Errorf("unsupported spreadsheet format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

func loadCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("spreadsheet %q is empty", filepath.Base(path))
	}
	return records[0], records[1:], nil
}

func loadWorkbook(path, sheet string) ([]string, [][]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer book.Close()

	name, err := resolveSheet(book, sheet)
	if err != nil {
		return nil, nil, err
	}

	records, err := book.GetRows(name)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", name)
	}
	return records[0], records[1:], nil
}

func resolveSheet(book *excelize.File, sheet string) (string, error) {
	sheet = strings.TrimSpace(sheet)
	if sheet == "" {
		return book.GetSheetName(0), nil
	}
	if idx, err := strconv.Atoi(sheet); err == nil {
		name := book.GetSheetName(idx)
		if name == "" {
			return "", fmt.Errorf("sheet index %d is out of range", idx)
		}
		return name, nil
	}
	if idx, err := book.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", fmt.Errorf("sheet %q not found", sheet)
	}
	return sheet, nil
}
