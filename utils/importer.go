package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

// AdmitRow is one parsed row of an uploaded admission sheet
type AdmitRow struct {
	Line  int    `json:"line"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RowError reports why a row was skipped
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

var emailValidate = validator.New()

// ParseAdmitSheet reads an uploaded .csv or .xlsx admission sheet into rows.
// The header must contain an "email" column (case-insensitive, trimmed); a
// missing "name" column is tolerated. Invalid rows are reported, not fatal.
func ParseAdmitSheet(file *multipart.FileHeader) ([]AdmitRow, []RowError, error) {
	src, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	var records [][]string

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".csv":
		records, err = readCSV(src)
	case ".xlsx":
		records, err = readXLSX(src)
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(file.Filename))
	}
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("uploaded file is empty")
	}

	emailCol, nameCol := -1, -1
	for i, header := range records[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "email":
			emailCol = i
		case "name", "full_name", "fullname":
			nameCol = i
		}
	}
	if emailCol == -1 {
		return nil, nil, fmt.Errorf("missing required column: email")
	}

	var rows []AdmitRow
	var rowErrors []RowError

	for i, record := range records[1:] {
		line := i + 2 // 1-based, after the header

		if emailCol >= len(record) {
			rowErrors = append(rowErrors, RowError{Line: line, Reason: "missing email"})
			continue
		}

		email := strings.ToLower(strings.TrimSpace(record[emailCol]))
		if email == "" {
			rowErrors = append(rowErrors, RowError{Line: line, Reason: "missing email"})
			continue
		}
		if err := emailValidate.Var(email, "email"); err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Reason: "invalid email: " + email})
			continue
		}

		name := ""
		if nameCol != -1 && nameCol < len(record) {
			name = strings.TrimSpace(record[nameCol])
		}
		if name == "" {
			name = "Student" // placeholder for sheets without a name column
		}

		rows = append(rows, AdmitRow{Line: line, Name: name, Email: email})
	}

	return rows, rowErrors, nil
}

func readCSV(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(src io.Reader) ([][]string, error) {
	book, err := excelize.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return book.GetRows(sheets[0])
}
