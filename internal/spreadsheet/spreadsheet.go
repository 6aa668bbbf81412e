// Package spreadsheet reads the admin bulk-upload workbooks. Only the first
// sheet is consulted; the first row is the header.
package spreadsheet

import (
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("spreadsheet: workbook has no sheets")

// Row is one data row keyed by header cell.
type Row map[string]string

// ReadRows parses an xlsx stream into header-keyed rows. Cell values are
// trimmed; rows shorter than the header get empty strings for the missing
// trailing cells.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := Row{}
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			row[header] = value
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Complete reports whether every column in the row has a value. Imports skip
// incomplete rows rather than failing the batch.
func (r Row) Complete() bool {
	if len(r) == 0 {
		return false
	}
	for _, v := range r {
		if v == "" {
			return false
		}
	}
	return true
}
