package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	readers "github.com/zdziszkee/swift-registry/internal/readers"
)

// XLSXSwiftRecordsReader decodes the registry's published Excel sheet.
// Only the first sheet is read; the header row is matched by column
// name like the CSV reader.
type XLSXSwiftRecordsReader struct{}

func NewXLSXSwiftRecordsReader() readers.SwiftRecordsReader {
	return &XLSXSwiftRecordsReader{}
}

var requiredColumns = []string{
	"COUNTRY ISO2 CODE",
	"SWIFT CODE",
	"NAME",
	"ADDRESS",
	"COUNTRY NAME",
}

func (x *XLSXSwiftRecordsReader) ReadRecords(reader io.Reader) ([]readers.Record, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("invalid xlsx: no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return []readers.Record{}, nil
	}

	headerMap := map[string]int{}
	for i, col := range rows[0] {
		headerMap[strings.TrimSpace(strings.ToUpper(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("invalid header: missing column '%s'", col)
		}
	}

	// GetRows truncates trailing empty cells, so every lookup is
	// bounds-checked.
	getVal := func(row []string, field string) string {
		idx := headerMap[field]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []readers.Record
	for rowNum, row := range rows[1:] {
		records = append(records, readers.Record{
			Index:          rowNum + 1,
			SwiftCode:      getVal(row, "SWIFT CODE"),
			BankName:       getVal(row, "NAME"),
			Address:        getVal(row, "ADDRESS"),
			CountryISOCode: getVal(row, "COUNTRY ISO2 CODE"),
			CountryName:    getVal(row, "COUNTRY NAME"),
		})
	}

	return records, nil
}
