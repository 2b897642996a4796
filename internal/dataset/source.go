package dataset

import (
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is the countrycode.org export endpoint root.
const DefaultBaseURL = "https://countrycode.org/customer/countryCode"

// Endpoint is a download URL paired with the cache key of its body.
type Endpoint struct {
	URL      string
	CacheKey string
}

// Source resolves countrycode.org endpoints and their cache keys.
type Source struct {
	BaseURL string
	// Dir is the cache directory (or key prefix) for raw downloads.
	Dir string
}

// CountryList is the endpoint of the full country table.
func (s Source) CountryList() Endpoint {
	return Endpoint{
		URL:      s.url("downloadCountryCodes", ""),
		CacheKey: filepath.Join(s.Dir, "countrycodes.csv"),
	}
}

// NationalCodes is the endpoint of one country's national dialing codes.
func (s Source) NationalCodes(iso2 string) Endpoint {
	return Endpoint{
		URL:      s.url("downloadNationalCodes", iso2),
		CacheKey: filepath.Join(s.Dir, "nationalcodes-"+iso2+".csv"),
	}
}

// CityCodes is the endpoint of one country's city dialing codes.
func (s Source) CityCodes(iso2 string) Endpoint {
	return Endpoint{
		URL:      s.url("downloadCityCodes", iso2),
		CacheKey: filepath.Join(s.Dir, "citycodes-"+iso2+".csv"),
	}
}

// Aggregate is the cache key of the merged dataset.
func (s Source) Aggregate() string {
	return filepath.Join(s.Dir, "countrycodes.json")
}

func (s Source) url(action, country string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	u := base + "/" + action
	if country != "" {
		u += "?" + url.Values{"country": {country}}.Encode()
	}

	return u
}
