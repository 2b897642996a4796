// Package diagnostic provides structured warnings and notes about the
// assembled country dataset.
//
// Key capabilities:
//   - Dialing codes that disagree with libphonenumber metadata
//   - Country codes libphonenumber does not know
//   - Continent values outside the known enumeration
//   - Per-country counts of dropped sub-code rows
package diagnostic
