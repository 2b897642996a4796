// Package pipeline drives one generator run: assemble the countrycode.org
// dataset, write the aggregate module, then one module per country.
package pipeline
