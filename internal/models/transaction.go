package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordType identifies the detail record letter a transaction encodes to.
type RecordType string

const (
	RecordTypeCredit RecordType = "C"
	RecordTypeDebit  RecordType = "D"
)

// IsValid reports whether the record type is one of the two supported
// detail record types. Return and reversal types are out of scope.
func (r RecordType) IsValid() bool {
	return r == RecordTypeCredit || r == RecordTypeDebit
}

// Segment is one payment instruction. Up to six segments pack into a
// single physical detail record; longer transactions split across records.
type Segment struct {
	// CPACode is the Canadian Payments Association transaction code
	// identifying the payment purpose, 0-999.
	CPACode int

	// Amount is the payment amount in dollars, two-decimal precision.
	// Must be positive and below 100,000,000.
	Amount decimal.Decimal

	// PaymentDate is the funds transfer date. Zero means the current date.
	PaymentDate time.Time

	// BankInstitutionNumber is 1-3 digits, BankTransitNumber 1-5 digits,
	// BankAccountNumber 1-12 digits.
	BankInstitutionNumber string
	BankTransitNumber     string
	BankAccountNumber     string

	// PayeeName is at most 30 characters; longer values are truncated.
	PayeeName string

	// CrossReferenceNumber correlates the payment with the originator's
	// records. Must be unique across the file when supplied; when empty a
	// deterministic value is derived from the file creation number, the
	// physical record sequence and the segment position.
	CrossReferenceNumber string

	// ItemTraceNumber is a destination-bank specific override for the
	// item trace field. Most institutions leave it empty.
	ItemTraceNumber string
}

// Transaction is an ordered group of segments sharing one record type.
type Transaction struct {
	// ID identifies the transaction in logs and validation messages.
	// It never appears in the encoded file.
	ID string

	Type     RecordType
	Segments []Segment
}

// IsCredit reports whether the transaction encodes as a credit record.
func (t Transaction) IsCredit() bool {
	return t.Type == RecordTypeCredit
}

// IsDebit reports whether the transaction encodes as a debit record.
func (t Transaction) IsDebit() bool {
	return t.Type == RecordTypeDebit
}
