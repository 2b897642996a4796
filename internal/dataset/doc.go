// Package dataset downloads the countrycode.org CSV exports and merges them
// into one record per country.
//
// Assembly pipeline:
//  1. Download the country list and parse it with the 21-column schema
//  2. For every country, download its city and national dialing codes
//  3. Drop sub-code rows without a description and attach the rest
//  4. Cache the merged list as JSON so later runs skip the network entirely
//
// Every download is memoized by cache key, so a failed run resumes from the
// last file it managed to store.
package dataset
