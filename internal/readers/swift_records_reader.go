package readers

import (
	"io"
)

// Record is one decoded row of the bulk SWIFT data source, before any
// normalization. Index is the 1-based data row number, used in
// validation logs.
type Record struct {
	Index          int
	SwiftCode      string // SWIFT CODE
	BankName       string // NAME
	Address        string // ADDRESS
	CountryISOCode string // COUNTRY ISO2 CODE
	CountryName    string // COUNTRY NAME
}

// SwiftRecordsReader decodes the bulk tabular source into records.
// Implementations handle framing only; content validation belongs to
// the normalizer.
type SwiftRecordsReader interface {
	ReadRecords(reader io.Reader) ([]Record, error)
}
