package encoder

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmorin/cpa005/internal/models"
)

var testDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) // 026074

func testConfig() models.Configuration {
	return models.Configuration{
		OriginatorID:        "0000012345",
		OriginatorShortName: "Test Co",
		OriginatorLongName:  "Test Co",
		FileCreationNumber:  "0001",
		FileCreationDate:    testDate,
	}
}

func testSegment() models.Segment {
	return models.Segment{
		CPACode:               450,
		Amount:                decimal.NewFromFloat(12.34),
		PaymentDate:           testDate,
		BankInstitutionNumber: "001",
		BankTransitNumber:     "12345",
		BankAccountNumber:     "123456789",
		PayeeName:             "Jane Doe",
	}
}

func TestHeaderLayout(t *testing.T) {
	enc := New(testConfig(), ProfileStandard)
	records, _ := enc.Encode(nil)
	require.Len(t, records, 2) // header and trailer only

	header := records[0]
	assert.Len(t, header, 1464)
	assert.Equal(t, "A", header[0:1])
	assert.Equal(t, "000000001", header[1:10])
	assert.Equal(t, "0000012345", header[10:20])
	assert.Equal(t, "0001", header[20:24])
	assert.Equal(t, "026074", header[24:30])
	assert.Equal(t, spaces(5), header[30:35], "unset data centre renders as blanks")
	assert.Equal(t, spaces(20), header[35:55])
	assert.Equal(t, spaces(3), header[55:58], "unset currency renders as blanks")
	assert.Equal(t, spaces(1406), header[58:])
}

func TestHeaderOptionalFields(t *testing.T) {
	cfg := testConfig()
	cfg.DestinationDataCentre = "123"
	cfg.DestinationCurrency = "CAD"

	records, _ := New(cfg, ProfileStandard).Encode(nil)
	header := records[0]
	assert.Equal(t, "00123", header[30:35])
	assert.Equal(t, "CAD", header[55:58])
}

func TestDetailRecordSampleScenario(t *testing.T) {
	tx := models.Transaction{ID: "tx-1", Type: models.RecordTypeCredit, Segments: []models.Segment{testSegment()}}
	records, totals := New(testConfig(), ProfileStandard).Encode([]models.Transaction{tx})
	require.Len(t, records, 3)

	for _, rec := range records {
		assert.Len(t, rec, 1464)
	}

	detail := records[1]
	assert.Equal(t, "C", detail[0:1])
	assert.Equal(t, "000000002", detail[1:10])
	assert.Equal(t, "0000012345", detail[10:20])
	assert.Equal(t, "0001", detail[20:24])

	// First segment block starts at offset 24.
	assert.Equal(t, "450", detail[24:27])
	assert.Equal(t, "0000001234", detail[27:37])
	assert.Equal(t, "026074", detail[37:43])
	assert.Equal(t, "0001", detail[43:47], "institution zero-padded to 4")
	assert.Equal(t, "12345", detail[47:52])
	assert.Equal(t, "123456789   ", detail[52:64])
	assert.Equal(t, zeros(22), detail[64:86], "no item trace override")
	assert.Equal(t, "000", detail[86:89])
	assert.Equal(t, "Test Co"+spaces(8), detail[89:104])
	assert.Equal(t, "Jane Doe"+spaces(22), detail[104:134])
	assert.Equal(t, "Test Co"+spaces(23), detail[134:164])
	assert.Equal(t, "00000"+spaces(5), detail[164:174], "originator ID truncated to 5 then padded")
	assert.Equal(t, "f0001r2s1"+spaces(10), detail[174:193], "fallback cross-reference")

	// The second segment slot onward is record padding.
	assert.Equal(t, spaces(1464-264), detail[264:])

	assert.Equal(t, int64(1234), totals.CreditAmount)
	assert.Equal(t, int64(1), totals.CreditCount)
	assert.Zero(t, totals.DebitAmount)
	assert.Zero(t, totals.DebitCount)
}

func TestSevenSegmentsSplitAcrossTwoRecords(t *testing.T) {
	tx := models.Transaction{ID: "tx-1", Type: models.RecordTypeDebit}
	for i := 0; i < 7; i++ {
		tx.Segments = append(tx.Segments, testSegment())
	}

	records, totals := New(testConfig(), ProfileStandard).Encode([]models.Transaction{tx})
	require.Len(t, records, 4) // header, two details, trailer

	first, second := records[1], records[2]
	assert.Equal(t, "D", first[0:1])
	assert.Equal(t, "D", second[0:1])
	assert.Equal(t, "000000002", first[1:10])
	assert.Equal(t, "000000003", second[1:10])

	// The first record is packed full; the second holds one segment.
	assert.NotEqual(t, " ", first[1463:])
	assert.Equal(t, "450", second[24:27])
	assert.Equal(t, spaces(1464-264), second[264:])

	// Fallback numbering restarts at s1 on the second record.
	assert.Equal(t, "f0001r3s1"+spaces(10), second[174:193])

	assert.Equal(t, int64(7*1234), totals.DebitAmount)
	assert.Equal(t, int64(7), totals.DebitCount)
}

func TestZeroSegmentTransactionEmitsNothing(t *testing.T) {
	txs := []models.Transaction{
		{ID: "tx-1", Type: models.RecordTypeCredit},
		{ID: "tx-2", Type: models.RecordTypeCredit, Segments: []models.Segment{testSegment()}},
	}
	records, _ := New(testConfig(), ProfileStandard).Encode(txs)
	require.Len(t, records, 3)
	// The only detail record belongs to tx-2 and keeps sequence 2.
	assert.Equal(t, "000000002", records[1][1:10])
}

func TestTrailerTotals(t *testing.T) {
	credit := testSegment()
	credit.Amount = decimal.RequireFromString("99999999.99")
	debit := testSegment()
	debit.Amount = decimal.RequireFromString("0.05")

	txs := []models.Transaction{
		{ID: "tx-1", Type: models.RecordTypeCredit, Segments: []models.Segment{credit, testSegment()}},
		{ID: "tx-2", Type: models.RecordTypeDebit, Segments: []models.Segment{debit}},
	}
	records, totals := New(testConfig(), ProfileStandard).Encode(txs)
	require.Len(t, records, 4)

	assert.Equal(t, int64(9999999999+1234), totals.CreditAmount)
	assert.Equal(t, int64(2), totals.CreditCount)
	assert.Equal(t, int64(5), totals.DebitAmount)
	assert.Equal(t, int64(1), totals.DebitCount)

	// Maximum accepted amount renders as ten cent digits.
	assert.Equal(t, "9999999999", records[1][27:37])

	trailer := records[3]
	assert.Len(t, trailer, 1464)
	assert.Equal(t, "Z", trailer[0:1])
	assert.Equal(t, "000000004", trailer[1:10], "last sequence plus one")
	assert.Equal(t, "0000012345", trailer[10:20])
	assert.Equal(t, "0001", trailer[20:24])
	assert.Equal(t, "00000000000005", trailer[24:38])
	assert.Equal(t, "00000001", trailer[38:46])
	assert.Equal(t, "00010000001233", trailer[46:60])
	assert.Equal(t, "00000002", trailer[60:68])
	assert.Equal(t, spaces(1464-68), trailer[68:])
}

func TestSuppliedCrossReference(t *testing.T) {
	seg := testSegment()
	seg.CrossReferenceNumber = "INV-2026-00042"
	tx := models.Transaction{ID: "tx-1", Type: models.RecordTypeCredit, Segments: []models.Segment{seg}}
	records, _ := New(testConfig(), ProfileStandard).Encode([]models.Transaction{tx})
	assert.Equal(t, padRight("INV-2026-00042", 19), records[1][174:193])
}

func TestItemTraceOverride(t *testing.T) {
	seg := testSegment()
	seg.ItemTraceNumber = "460400410001234567"
	tx := models.Transaction{ID: "tx-1", Type: models.RecordTypeCredit, Segments: []models.Segment{seg}}
	records, _ := New(testConfig(), ProfileTD).Encode([]models.Transaction{tx})

	detail := records[1]
	assert.Len(t, detail, 1458)
	// TD segment block: institution occupies 3 digits, so the trace
	// field starts one character earlier than in the standard profile.
	assert.Equal(t, "001", detail[43:46])
	assert.Equal(t, "460400410001234567"+"0001", detail[63:85])
}

func TestTDProfileRecordLength(t *testing.T) {
	tx := models.Transaction{ID: "tx-1", Type: models.RecordTypeCredit, Segments: []models.Segment{testSegment()}}
	records, _ := New(testConfig(), ProfileTD).Encode([]models.Transaction{tx})
	for _, rec := range records {
		assert.Len(t, rec, 1458)
	}
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("standard")
	require.NoError(t, err)
	assert.Equal(t, ProfileStandard, p)

	p, err = ProfileByName("td")
	require.NoError(t, err)
	assert.Equal(t, ProfileTD, p)

	_, err = ProfileByName("rbc")
	assert.Error(t, err)
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "abc  ", padRight("abc", 5))
	assert.Equal(t, "abcde", padRight("abcdefg", 5))
	assert.Equal(t, "00042", padZero("42", 5))
	assert.Equal(t, "2345", padZero("12345", 4), "rightmost digits kept")
	assert.Equal(t, strings.Repeat(" ", 3), spaces(3))
	assert.Equal(t, strings.Repeat("0", 3), zeros(3))
}
