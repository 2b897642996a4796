package dataset

import (
	"context"
	"fmt"
	"sync"

	"countrycodes-generator/internal/fetch"
)

const (
	testBase = "http://countrycode.test/customer/countryCode"

	countryHeader = "Country Name,ISO2,ISO3,Top Level Domain,FIPS,ISO Numeric,GeoNameID,E164," +
		"Phone Code,Continent,Capital,Time Zone in Capital,Currency,Language Codes,Languages," +
		"Area KM2,Internet Hosts,Internet Users,Phones (Mobile),Phones (Landline),GDP\n"

	chileRow = `Chile,CL,CHL,cl,CI,152,3895114,56,56,South America,Santiago,America/Santiago,` +
		`Peso,"es, rap",Spanish,756950,2152000,7009000,24130000,3276000,281700000000` + "\n"

	// Latin-1 encoded; \xe7 is 'ç'.
	curacaoRow = "Cura\xe7ao,CW,CUW,cw,UC,531,7626836,599,599,North America,Willemstad," +
		"America/Curacao,Guilder,\"nl, pap\",Dutch,444,,,,,5600000000\n"

	subCodeHeader = "Phone Code,Description\n"
)

var testSource = Source{BaseURL: testBase, Dir: "src/countrycode.org"}

// stubFetcher serves canned bodies by URL and counts requests.
type stubFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  map[string]int
	order  []string
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		bodies: make(map[string]string),
		calls:  make(map[string]int),
	}
}

func (f *stubFetcher) Fetch(_ context.Context, url, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[url]++
	f.order = append(f.order, url)

	body, ok := f.bodies[url]
	if !ok {
		return nil, fmt.Errorf("%w: GET %s: connection refused", fetch.ErrNetwork, url)
	}

	return []byte(body), nil
}

func (f *stubFetcher) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		n += c
	}

	return n
}

// twoCountries serves Chile (one valid and one blank city code, one national
// code) and Curaçao (no sub-codes).
func twoCountries() *stubFetcher {
	f := newStubFetcher()
	f.bodies[testSource.CountryList().URL] = countryHeader + chileRow + curacaoRow
	f.bodies[testSource.CityCodes("CL").URL] = subCodeHeader + "56 2,Santiago\n56 32,\n"
	f.bodies[testSource.NationalCodes("CL").URL] = subCodeHeader + "56 9,Mobile\n"
	f.bodies[testSource.CityCodes("CW").URL] = subCodeHeader
	f.bodies[testSource.NationalCodes("CW").URL] = subCodeHeader

	return f
}
