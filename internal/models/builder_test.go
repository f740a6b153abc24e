package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionBuilder(t *testing.T) {
	tx, err := NewTransactionBuilder().
		AsDebit().
		AddPayment(450, decimal.NewFromFloat(12.34), time.Time{}, "001", "12345", "123456789", "Jane Doe").
		Build()
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID, "builder assigns an ID")
	assert.Equal(t, RecordTypeDebit, tx.Type)
	require.Len(t, tx.Segments, 1)
	assert.Equal(t, 450, tx.Segments[0].CPACode)
	assert.Equal(t, "Jane Doe", tx.Segments[0].PayeeName)
	assert.True(t, tx.IsDebit())
	assert.False(t, tx.IsCredit())
}

func TestTransactionBuilderDefaultsToCredit(t *testing.T) {
	tx, err := NewTransactionBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, RecordTypeCredit, tx.Type)
}

func TestTransactionBuilderErrorCarry(t *testing.T) {
	_, err := NewTransactionBuilder().
		WithType("X").
		AddSegment(Segment{CPACode: 450}).
		Build()
	assert.Error(t, err)

	_, err = NewTransactionBuilder().WithID("").Build()
	assert.Error(t, err)
}

func TestRecordTypeIsValid(t *testing.T) {
	assert.True(t, RecordTypeCredit.IsValid())
	assert.True(t, RecordTypeDebit.IsValid())
	assert.False(t, RecordType("E").IsValid())
	assert.False(t, RecordType("").IsValid())
}
