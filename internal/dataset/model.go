package dataset

// Continent is the continent column of the country list.
type Continent string

const (
	ContinentAfrica       Continent = "Africa"
	ContinentAntarctica   Continent = "Antarctica"
	ContinentAsia         Continent = "Asia"
	ContinentEurope       Continent = "Europe"
	ContinentNorthAmerica Continent = "North America"
	ContinentOceania      Continent = "Oceania"
	ContinentSouthAmerica Continent = "South America"
)

// IsValid reports whether c is one of the known continents.
func (c Continent) IsValid() bool {
	switch c {
	case ContinentAfrica, ContinentAntarctica, ContinentAsia, ContinentEurope,
		ContinentNorthAmerica, ContinentOceania, ContinentSouthAmerica:
		return true
	default:
		return false
	}
}

// CountryRecord is one row of the country list. Field order is the JSON key
// order of the generated modules.
type CountryRecord struct {
	CountryName       string    `json:"CountryName"`
	ISO2              string    `json:"ISO2"`
	ISO3              string    `json:"ISO3"`
	TopLevelDomain    string    `json:"TopLevelDomain"`
	FIPS              string    `json:"FIPS"`
	ISONumeric        *float64  `json:"ISONumeric"`
	GeoNameID         *float64  `json:"GeoNameID"`
	E164              *float64  `json:"E164"`
	PhoneCode         []string  `json:"PhoneCode"`
	Continent         Continent `json:"Continent"`
	Capital           string    `json:"Capital"`
	TimeZoneInCapital string    `json:"TimeZoneinCapital"`
	Currency          string    `json:"Currency"`
	LanguageCodes     []string  `json:"LanguageCodes"`
	Languages         string    `json:"Languages"`
	AreaKM2           *float64  `json:"AreaKM2"`
	InternetHosts     *float64  `json:"InternetHosts"`
	InternetUsers     *float64  `json:"InternetUsers"`
	PhonesMobile      *float64  `json:"Phones (Mobile)"`
	PhonesLandline    *float64  `json:"Phones (Landline)"`
	GDP               *float64  `json:"GDP"`
}

// SubCode is a dialing code below the country level.
type SubCode struct {
	PhoneCode   string `json:"PhoneCode"`
	Description string `json:"Description"`
}

type (
	NationalCode = SubCode
	CityCode     = SubCode
)

// CountryRecordFull is a CountryRecord with its sub-codes attached.
type CountryRecordFull struct {
	CountryRecord

	CityCodes     []CityCode     `json:"CityCodes"`
	NationalCodes []NationalCode `json:"NationalCodes"`
}
