package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first error encountered is carried through and returned by Build.
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a builder for a credit transaction with a
// generated ID.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			ID:   uuid.NewString(),
			Type: RecordTypeCredit,
		},
	}
}

// WithID overrides the generated transaction ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = errors.New("transaction ID cannot be empty")
		return b
	}
	b.tx.ID = id
	return b
}

// AsCredit marks the transaction as a credit ("C") record.
func (b *TransactionBuilder) AsCredit() *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Type = RecordTypeCredit
	return b
}

// AsDebit marks the transaction as a debit ("D") record.
func (b *TransactionBuilder) AsDebit() *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Type = RecordTypeDebit
	return b
}

// WithType sets the record type from a string letter ("C" or "D").
func (b *TransactionBuilder) WithType(letter string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	rt := RecordType(letter)
	if !rt.IsValid() {
		b.err = fmt.Errorf("invalid record type %q, expected C or D", letter)
		return b
	}
	b.tx.Type = rt
	return b
}

// AddSegment appends a fully populated segment.
func (b *TransactionBuilder) AddSegment(seg Segment) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Segments = append(b.tx.Segments, seg)
	return b
}

// AddPayment appends a segment built from the common fields, leaving the
// optional cross-reference and item trace empty.
func (b *TransactionBuilder) AddPayment(cpaCode int, amount decimal.Decimal, date time.Time, institution, transit, account, payee string) *TransactionBuilder {
	return b.AddSegment(Segment{
		CPACode:               cpaCode,
		Amount:                amount,
		PaymentDate:           date,
		BankInstitutionNumber: institution,
		BankTransitNumber:     transit,
		BankAccountNumber:     account,
		PayeeName:             payee,
	})
}

// Build returns the constructed transaction or the first error recorded
// by the chain.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	return b.tx, nil
}
