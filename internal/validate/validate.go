// Package validate checks configurations and transaction lists against the
// CPA 005 field constraints before encoding.
//
// Validation distinguishes two severities. Fatal conditions break the
// fixed-width format and abort immediately with an error. Warnings mark
// survivable degradations (truncation, defaulted fields, duplicate
// cross-references) and are accumulated across the whole scan; export
// proceeds whenever only warnings were produced.
package validate

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"jmorin/cpa005/internal/models"
)

// MaxTransactions is the capacity of the trailer's record count field.
const MaxTransactions = 999_999_999

// maxAmount is the exclusive upper bound on a segment amount: the amount
// field holds ten cent digits, so $100,000,000 no longer fits.
var maxAmount = decimal.NewFromInt(100_000_000)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// Result carries the itemized warnings produced by a validation pass.
type Result struct {
	Warnings []string
}

// WarningCount returns the number of accumulated warnings.
func (r Result) WarningCount() int {
	return len(r.Warnings)
}

// Merge appends another result's warnings.
func (r *Result) Merge(other Result) {
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// isDigits reports whether s is a digit string of length [min, max].
func isDigits(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max && digitsRe.MatchString(s)
}

// Configuration validates the originator configuration and returns a
// normalized copy alongside the warnings. The caller's value is never
// mutated: when the short name is missing, the returned copy carries the
// long name (truncated to 15 characters) in its place and a warning is
// recorded.
func Configuration(cfg models.Configuration) (models.Configuration, Result, error) {
	var res Result

	if len(cfg.OriginatorID) > 10 {
		return cfg, res, &FieldError{
			Field:  "originator ID",
			Value:  cfg.OriginatorID,
			Reason: "must be at most 10 characters",
		}
	}
	if !isDigits(cfg.FileCreationNumber, 1, 4) {
		return cfg, res, &FieldError{
			Field:  "file creation number",
			Value:  cfg.FileCreationNumber,
			Reason: "must be 1 to 4 digits",
		}
	}
	if cfg.DestinationDataCentre != "" && !isDigits(cfg.DestinationDataCentre, 1, 5) {
		return cfg, res, &FieldError{
			Field:  "destination data centre",
			Value:  cfg.DestinationDataCentre,
			Reason: "must be 1 to 5 digits when set",
		}
	}
	switch cfg.DestinationCurrency {
	case "", models.CurrencyCAD, models.CurrencyUSD:
	default:
		return cfg, res, &FieldError{
			Field:  "destination currency",
			Value:  cfg.DestinationCurrency,
			Reason: "must be CAD or USD when set",
		}
	}

	if cfg.OriginatorShortName == "" {
		short := cfg.OriginatorLongName
		if len(short) > 15 {
			short = short[:15]
		}
		cfg.OriginatorShortName = short
		res.warnf("originator short name missing, defaulting to '%s'", short)
	} else if len(cfg.OriginatorShortName) > 15 {
		res.warnf("originator short name '%s' exceeds 15 characters and will be truncated", cfg.OriginatorShortName)
	}
	if len(cfg.OriginatorLongName) > 30 {
		res.warnf("originator long name '%s' exceeds 30 characters and will be truncated", cfg.OriginatorLongName)
	}

	return cfg, res, nil
}

// Transactions validates a transaction list. Warnings accumulate across
// every transaction and segment; the first fatal condition aborts with
// the warnings gathered so far.
func Transactions(txs []models.Transaction) (Result, error) {
	var res Result

	if len(txs) == 0 {
		res.warnf("transaction list is empty, file will contain no detail records")
	}
	if len(txs) > MaxTransactions {
		return res, fmt.Errorf("transaction count %d exceeds the record count capacity of %d", len(txs), MaxTransactions)
	}

	seenCrossRefs := make(map[string]struct{})
	for _, tx := range txs {
		if !tx.Type.IsValid() {
			return res, &TransactionError{
				TransactionID: tx.ID,
				Reason:        fmt.Sprintf("record type '%s' is not Credit or Debit", tx.Type),
			}
		}
		if len(tx.Segments) == 0 {
			res.warnf("transaction %s has no segments and will be skipped", tx.ID)
		} else if len(tx.Segments) > 6 {
			res.warnf("transaction %s has %d segments and will be split across multiple records", tx.ID, len(tx.Segments))
		}

		for i, seg := range tx.Segments {
			pos := i + 1
			if err := validateSegment(tx, pos, seg, &res); err != nil {
				return res, err
			}
			if seg.CrossReferenceNumber != "" {
				if _, dup := seenCrossRefs[seg.CrossReferenceNumber]; dup {
					res.warnf("cross-reference number '%s' is already used in this file", seg.CrossReferenceNumber)
				}
				seenCrossRefs[seg.CrossReferenceNumber] = struct{}{}
			}
		}
	}

	return res, nil
}

func validateSegment(tx models.Transaction, pos int, seg models.Segment, res *Result) error {
	// A code outside [0, 999] would unbalance the fixed-width layout, so
	// it is fatal; a structurally valid but unlisted code only warns.
	if seg.CPACode < 0 || seg.CPACode > 999 {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "CPA code",
			Reason:        fmt.Sprintf("%d is outside the 3-digit range", seg.CPACode),
		}
	}
	if !models.KnownCPACode(seg.CPACode) {
		res.warnf("transaction %s segment %d: CPA code %03d is not a recognized transaction code", tx.ID, pos, seg.CPACode)
	}

	if !seg.Amount.IsPositive() {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "amount",
			Reason:        fmt.Sprintf("%s must be positive", seg.Amount),
		}
	}
	if seg.Amount.GreaterThanOrEqual(maxAmount) {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "amount",
			Reason:        fmt.Sprintf("%s exceeds the maximum of $99,999,999.99", seg.Amount),
		}
	}
	if seg.Amount.Exponent() < -2 {
		res.warnf("transaction %s segment %d: amount %s has more than two decimal places and will be truncated to cents", tx.ID, pos, seg.Amount)
	}

	if !isDigits(seg.BankInstitutionNumber, 1, 3) {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "bank institution number",
			Reason:        fmt.Sprintf("'%s' must be 1 to 3 digits", seg.BankInstitutionNumber),
		}
	}
	if !isDigits(seg.BankTransitNumber, 1, 5) {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "bank transit number",
			Reason:        fmt.Sprintf("'%s' must be 1 to 5 digits", seg.BankTransitNumber),
		}
	}
	if !isDigits(seg.BankAccountNumber, 1, 12) {
		return &SegmentError{
			TransactionID: tx.ID,
			Segment:       pos,
			Field:         "bank account number",
			Reason:        fmt.Sprintf("'%s' must be 1 to 12 digits", seg.BankAccountNumber),
		}
	}

	if len(seg.PayeeName) > 30 {
		res.warnf("transaction %s segment %d: payee name '%s' exceeds 30 characters and will be truncated", tx.ID, pos, seg.PayeeName)
	}
	if seg.ItemTraceNumber != "" {
		if !digitsRe.MatchString(seg.ItemTraceNumber) {
			res.warnf("transaction %s segment %d: item trace number '%s' is not numeric", tx.ID, pos, seg.ItemTraceNumber)
		} else if len(seg.ItemTraceNumber) > 18 {
			res.warnf("transaction %s segment %d: item trace number '%s' exceeds 18 digits and will be truncated", tx.ID, pos, seg.ItemTraceNumber)
		}
	}

	return nil
}
