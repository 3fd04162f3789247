package service

// SwiftCode is a single code summary as served by the API. Branch
// summaries inside a details response omit the country name.
type SwiftCode struct {
	SwiftCode     string `json:"swiftCode"`
	BankName      string `json:"bankName"`
	Address       string `json:"address"`
	CountryISO2   string `json:"countryISO2"`
	IsHeadquarter bool   `json:"isHeadquarter"`
}

// SwiftCodeDetails is the response for a single-code lookup. Branches
// is non-nil (possibly empty) for a headquarters and nil for a
// branch.
type SwiftCodeDetails struct {
	SwiftCode     string      `json:"swiftCode"`
	BankName      string      `json:"bankName"`
	Address       string      `json:"address"`
	CountryISO2   string      `json:"countryISO2"`
	CountryName   string      `json:"countryName"`
	IsHeadquarter bool        `json:"isHeadquarter"`
	Branches      []SwiftCode `json:"branches"`
}

// CountrySwiftCodes lists every code registered for a country,
// headquarters before branches.
type CountrySwiftCodes struct {
	CountryISO2 string      `json:"countryISO2"`
	CountryName string      `json:"countryName"`
	SwiftCodes  []SwiftCode `json:"swiftCodes"`
}

// CreateSwiftCodeRequest is the add-request body. IsHeadquarter is
// advisory: the code shape decides whether a bank or a branch is
// created.
type CreateSwiftCodeRequest struct {
	SwiftCode     string `json:"swiftCode"`
	BankName      string `json:"bankName"`
	Address       string `json:"address"`
	CountryISO2   string `json:"countryISO2"`
	CountryName   string `json:"countryName"`
	IsHeadquarter bool   `json:"isHeadquarter"`
}
