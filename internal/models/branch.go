package models

// Branch is a non-headquarters office. HeadquartersCode is derived
// from the first 8 characters of SwiftCode and must name an existing
// Bank.
type Branch struct {
	SwiftCode        string `db:"swift_code" json:"swiftCode"`
	BankName         string `db:"bank_name" json:"bankName"`
	Address          string `db:"address" json:"address"`
	CountryISOCode   string `db:"country_iso_code" json:"countryISO2"`
	HeadquartersCode string `db:"headquarters_code" json:"headquartersCode"`
}
