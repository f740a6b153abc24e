// Package models defines the data types shared by the validator, the record
// encoder and the generator: the file-level configuration, transactions and
// their payment segments, and the CPA transaction code table.
package models

import "time"

// Supported destination currency labels. The currency is a label field in
// the file header only; it takes no part in amount arithmetic.
const (
	CurrencyCAD = "CAD"
	CurrencyUSD = "USD"
)

// Configuration describes the originator of one CPA 005 file. One
// Configuration produces one file.
//
// FileCreationDate and the per-segment payment dates use the zero
// time.Time to mean "today". The validator never mutates a Configuration;
// it returns a normalized copy instead (see validate.Configuration).
type Configuration struct {
	// OriginatorID is the identifier assigned by the receiving
	// institution, at most 10 characters.
	OriginatorID string `yaml:"originator_id"`

	// OriginatorShortName is at most 15 characters. When empty it is
	// defaulted from OriginatorLongName during validation.
	OriginatorShortName string `yaml:"originator_short_name"`

	// OriginatorLongName is at most 30 characters.
	OriginatorLongName string `yaml:"originator_long_name"`

	// FileCreationNumber is a 1-4 digit string, usually incremented by
	// the caller for every file handed to the bank.
	FileCreationNumber string `yaml:"file_creation_number"`

	// FileCreationDate is the date encoded in the header. Zero means
	// the current date.
	FileCreationDate time.Time `yaml:"file_creation_date"`

	// DestinationDataCentre is an optional 1-5 digit data centre code.
	// Empty means unset and renders as blanks in the header.
	DestinationDataCentre string `yaml:"destination_data_centre"`

	// DestinationCurrency is CAD, USD or empty.
	DestinationCurrency string `yaml:"destination_currency"`
}
