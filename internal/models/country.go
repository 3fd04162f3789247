package models

// Country groups banks and branches under a 2-letter ISO code. The
// ISO code and name are stored upper-cased. Countries are created on
// first reference and never updated or deleted afterwards.
type Country struct {
	ISO2 string `db:"iso2" json:"countryISO2"`
	Name string `db:"name" json:"countryName"`
}
