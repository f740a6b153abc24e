package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownCPACode(t *testing.T) {
	assert.True(t, KnownCPACode(200))
	assert.True(t, KnownCPACode(450))
	assert.False(t, KnownCPACode(999))
	assert.False(t, KnownCPACode(-1))
}

func TestCPACodeDescription(t *testing.T) {
	assert.Equal(t, "Payroll Deposit", CPACodeDescription(200))
	assert.Equal(t, "Miscellaneous Payment", CPACodeDescription(450))
	assert.Empty(t, CPACodeDescription(999))
}

func TestSortedCPACodes(t *testing.T) {
	codes := SortedCPACodes()
	assert.Len(t, codes, len(CPACodes))
	assert.True(t, sort.IntsAreSorted(codes))
	for _, code := range codes {
		assert.GreaterOrEqual(t, code, 0)
		assert.LessOrEqual(t, code, 999)
	}
}
