package parsers

import (
	"log"
	"regexp"
	"strings"

	"github.com/zdziszkee/swift-registry/internal/codes"
	"github.com/zdziszkee/swift-registry/internal/models"
	readers "github.com/zdziszkee/swift-registry/internal/readers"
)

// RecordSet is the normalized, deduplicated form of a bulk source:
// one entry per country, headquarters and branch, keyed by natural
// identifier in first-seen order.
type RecordSet struct {
	Countries *OrderedMap[models.Country]
	Banks     *OrderedMap[models.Bank]
	Branches  *OrderedMap[models.Branch]
}

type SwiftRecordsNormalizer interface {
	Normalize(records []readers.Record) (*RecordSet, error)
}

type DefaultSwiftRecordsNormalizer struct{}

func NewSwiftRecordsNormalizer() SwiftRecordsNormalizer {
	return DefaultSwiftRecordsNormalizer{}
}

var bicRegex = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2}$`)

// Normalize validates raw records, drops malformed rows with a log
// line, classifies each surviving code and collapses duplicates.
// Country names follow last-write-wins: the source is trusted, a
// later row silently overwrites an earlier name for the same ISO
// code. The same policy applies to duplicate bank and branch codes.
func (p DefaultSwiftRecordsNormalizer) Normalize(records []readers.Record) (*RecordSet, error) {
	set := &RecordSet{
		Countries: NewOrderedMap[models.Country](),
		Banks:     NewOrderedMap[models.Bank](),
		Branches:  NewOrderedMap[models.Branch](),
	}

	for _, record := range records {
		swiftCode := strings.ToUpper(record.SwiftCode)
		countryISO := strings.ToUpper(record.CountryISOCode)
		countryName := strings.ToUpper(record.CountryName)

		if swiftCode == "" {
			log.Printf("WARNING: row %d: empty SWIFT code, row dropped", record.Index)
			continue
		}
		if !bicRegex.MatchString(swiftCode) {
			log.Printf("WARNING: row %d: SWIFT code '%s' is not a valid BIC, row dropped", record.Index, swiftCode)
			continue
		}
		if record.BankName == "" {
			log.Printf("WARNING: row %d: empty bank name for '%s', row dropped", record.Index, swiftCode)
			continue
		}
		if !countryCodeRegex.MatchString(countryISO) {
			log.Printf("WARNING: row %d: country code '%s' is not ISO2, row dropped", record.Index, record.CountryISOCode)
			continue
		}
		if countryName == "" {
			log.Printf("WARNING: row %d: empty country name for '%s', row dropped", record.Index, swiftCode)
			continue
		}

		set.Countries.Set(countryISO, models.Country{
			ISO2: countryISO,
			Name: countryName,
		})

		if codes.IsHeadquarters(swiftCode) {
			set.Banks.Set(swiftCode, models.Bank{
				SwiftCode:      swiftCode,
				BankName:       record.BankName,
				Address:        record.Address,
				CountryISOCode: countryISO,
			})
		} else {
			set.Branches.Set(swiftCode, models.Branch{
				SwiftCode:        swiftCode,
				BankName:         record.BankName,
				Address:          record.Address,
				CountryISOCode:   countryISO,
				HeadquartersCode: codes.HeadquartersCode(swiftCode),
			})
		}
	}

	return set, nil
}
