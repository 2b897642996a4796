package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"countrycodes-generator/internal/diagnostic"
)

// Diagnostic codes reported by Check.
const (
	CodeUnknownRegion    = "UNKNOWN_REGION"
	CodeMissingPhoneCode = "MISSING_PHONE_CODE"
	CodePhoneMismatch    = "PHONE_CODE_MISMATCH"
	CodeUnknownContinent = "UNKNOWN_CONTINENT"
	CodeEmptyDescription = "EMPTY_DESCRIPTION"
)

// Check cross-checks records against libphonenumber metadata and reports
// what looks wrong. It never fails; the caller decides what to do with
// the findings.
func (a *Assembler) Check(records []CountryRecordFull) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, r := range records {
		diags.Merge(checkRecord(r.CountryRecord))
	}

	dropped := a.Dropped()

	countries := make([]string, 0, len(dropped))
	for iso2 := range dropped {
		countries = append(countries, iso2)
	}

	sort.Strings(countries)

	for _, iso2 := range countries {
		diags.AddWarning(CodeEmptyDescription,
			fmt.Sprintf("%d sub-code rows without description dropped", dropped[iso2]),
			iso2, "")
	}

	return diags
}

func checkRecord(r CountryRecord) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if r.Continent != "" && !r.Continent.IsValid() {
		diags.AddWarning(CodeUnknownContinent,
			fmt.Sprintf("continent %q is not recognized", r.Continent),
			r.ISO2, "Continent")
	}

	region := strings.ToUpper(r.ISO2)

	expected := phonenumbers.GetCountryCodeForRegion(region)
	if expected == 0 {
		diags.AddInfo(CodeUnknownRegion,
			fmt.Sprintf("region %q has no libphonenumber metadata", region),
			r.ISO2, "ISO2")

		return diags
	}

	lead := leadingCallingCode(r.PhoneCode)
	if lead == "" {
		diags.AddWarning(CodeMissingPhoneCode, "record has no phone code", r.ISO2, "PhoneCode")

		return diags
	}

	if lead != strconv.Itoa(expected) {
		diags.AddWarning(CodePhoneMismatch,
			fmt.Sprintf("phone code %s does not match calling code %d", lead, expected),
			r.ISO2, "PhoneCode")
	}

	return diags
}

// leadingCallingCode returns the country calling code of the first phone
// code, e.g. "1" for "1-684".
func leadingCallingCode(codes []string) string {
	if len(codes) == 0 {
		return ""
	}

	first, _, _ := strings.Cut(codes[0], "-")

	return strings.NewReplacer("+", "", " ", "").Replace(first)
}
