package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	readers "github.com/zdziszkee/swift-registry/internal/readers"
)

// CSVSwiftRecordsReader decodes the registry's CSV export. The header
// row is matched by column name, so both the full published layout
// (with CODE TYPE, TOWN NAME, TIME ZONE) and a reduced five-column
// export are accepted.
type CSVSwiftRecordsReader struct{}

func NewCSVSwiftRecordsReader() readers.SwiftRecordsReader {
	return &CSVSwiftRecordsReader{}
}

var requiredColumns = []string{
	"COUNTRY ISO2 CODE",
	"SWIFT CODE",
	"NAME",
	"ADDRESS",
	"COUNTRY NAME",
}

func (c *CSVSwiftRecordsReader) ReadRecords(reader io.Reader) ([]readers.Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return []readers.Record{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	headerMap := map[string]int{}
	for i, col := range header {
		headerMap[strings.TrimSpace(strings.ToUpper(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("invalid header: missing column '%s'", col)
		}
	}

	var records []readers.Record
	rowNum := 1
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		getVal := func(field string) string {
			idx := headerMap[field]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, readers.Record{
			Index:          rowNum,
			SwiftCode:      getVal("SWIFT CODE"),
			BankName:       getVal("NAME"),
			Address:        getVal("ADDRESS"),
			CountryISOCode: getVal("COUNTRY ISO2 CODE"),
			CountryName:    getVal("COUNTRY NAME"),
		})
		rowNum++
	}

	return records, nil
}
