// Package config loads generator settings.
//
// Sources, later ones overriding earlier ones:
//   - built-in defaults (countrycode.org, src/countrycode.org, lib/countrycodes)
//   - an optional YAML file
//   - a .env file in the working directory, if present
//   - COUNTRYCODES_* environment variables
package config
