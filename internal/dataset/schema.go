package dataset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"countrycodes-generator/internal/csvtable"
)

// Country list columns, in file order.
const (
	colCountryName       = "CountryName"
	colISO2              = "ISO2"
	colISO3              = "ISO3"
	colTopLevelDomain    = "TopLevelDomain"
	colFIPS              = "FIPS"
	colISONumeric        = "ISONumeric"
	colGeoNameID         = "GeoNameID"
	colE164              = "E164"
	colPhoneCode         = "PhoneCode"
	colContinent         = "Continent"
	colCapital           = "Capital"
	colTimeZoneInCapital = "TimeZoneinCapital"
	colCurrency          = "Currency"
	colLanguageCodes     = "LanguageCodes"
	colLanguages         = "Languages"
	colAreaKM2           = "AreaKM2"
	colInternetHosts     = "InternetHosts"
	colInternetUsers     = "InternetUsers"
	colPhonesMobile      = "Phones (Mobile)"
	colPhonesLandline    = "Phones (Landline)"
	colGDP               = "GDP"

	colDescription = "Description"
)

var listSeparator = regexp.MustCompile(`,\s*`)

var countrySchema = csvtable.Schema{
	Columns: []string{
		colCountryName, colISO2, colISO3, colTopLevelDomain, colFIPS,
		colISONumeric, colGeoNameID, colE164, colPhoneCode, colContinent,
		colCapital, colTimeZoneInCapital, colCurrency, colLanguageCodes, colLanguages,
		colAreaKM2, colInternetHosts, colInternetUsers, colPhonesMobile, colPhonesLandline,
		colGDP,
	},
	FromLine: 2,
	Cast:     castCountryCell,
}

var subCodeSchema = csvtable.Schema{
	Columns:  []string{colPhoneCode, colDescription},
	FromLine: 2,
}

// castCountryCell splits list columns, turns numeric columns into numbers
// (blank cells become null) and leaves the rest as text.
func castCountryCell(column, raw string) (any, error) {
	switch column {
	case colPhoneCode, colLanguageCodes:
		return listSeparator.Split(raw, -1), nil

	case colISONumeric, colGeoNameID, colE164, colAreaKM2, colInternetHosts,
		colInternetUsers, colPhonesMobile, colPhonesLandline, colGDP:
		return parseNumber(raw)

	default:
		return raw, nil
	}
}

func parseNumber(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}

	return &f, nil
}

// ParseCountries parses the UTF-8 text of the country list export.
func ParseCountries(text string) ([]CountryRecord, error) {
	records, err := csvtable.Parse(text, countrySchema)
	if err != nil {
		return nil, err
	}

	countries := make([]CountryRecord, 0, len(records))
	for _, r := range records {
		countries = append(countries, countryFromRecord(r))
	}

	return countries, nil
}

// ParseSubCodes parses the UTF-8 text of a national or city code export.
// Rows are returned unfiltered.
func ParseSubCodes(text string) ([]SubCode, error) {
	records, err := csvtable.Parse(text, subCodeSchema)
	if err != nil {
		return nil, err
	}

	codes := make([]SubCode, 0, len(records))
	for _, r := range records {
		codes = append(codes, SubCode{
			PhoneCode:   r.String(colPhoneCode),
			Description: r.String(colDescription),
		})
	}

	return codes, nil
}

func countryFromRecord(r csvtable.Record) CountryRecord {
	return CountryRecord{
		CountryName:       r.String(colCountryName),
		ISO2:              r.String(colISO2),
		ISO3:              r.String(colISO3),
		TopLevelDomain:    r.String(colTopLevelDomain),
		FIPS:              r.String(colFIPS),
		ISONumeric:        r.Number(colISONumeric),
		GeoNameID:         r.Number(colGeoNameID),
		E164:              r.Number(colE164),
		PhoneCode:         r.Strings(colPhoneCode),
		Continent:         Continent(r.String(colContinent)),
		Capital:           r.String(colCapital),
		TimeZoneInCapital: r.String(colTimeZoneInCapital),
		Currency:          r.String(colCurrency),
		LanguageCodes:     r.Strings(colLanguageCodes),
		Languages:         r.String(colLanguages),
		AreaKM2:           r.Number(colAreaKM2),
		InternetHosts:     r.Number(colInternetHosts),
		InternetUsers:     r.Number(colInternetUsers),
		PhonesMobile:      r.Number(colPhonesMobile),
		PhonesLandline:    r.Number(colPhonesLandline),
		GDP:               r.Number(colGDP),
	}
}
