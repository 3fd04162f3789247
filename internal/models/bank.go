package models

// Bank is a headquarters office. Its SWIFT code always ends in "XXX".
type Bank struct {
	SwiftCode      string `db:"swift_code" json:"swiftCode"`
	BankName       string `db:"bank_name" json:"bankName"`
	Address        string `db:"address" json:"address"`
	CountryISOCode string `db:"country_iso_code" json:"countryISO2"`
}
