// Package encoder renders CPA 005 physical records: one header, detail
// records packing up to six payment segments each, and a trailer carrying
// the accumulated credit and debit totals.
package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"jmorin/cpa005/internal/julian"
	"jmorin/cpa005/internal/models"
)

// Totals accumulates the credit and debit sums written into the trailer.
// Amounts are cents.
type Totals struct {
	CreditAmount int64
	CreditCount  int64
	DebitAmount  int64
	DebitCount   int64
}

// Encoder renders the record sequence for one file. It assumes the
// configuration and transactions already passed validation; the encoding
// pass itself has no error path.
type Encoder struct {
	cfg     models.Configuration
	profile Profile
}

// New creates an encoder for a validated configuration and layout profile.
func New(cfg models.Configuration, profile Profile) *Encoder {
	return &Encoder{cfg: cfg, profile: profile}
}

// Encode produces the ordered physical records for the transaction list:
// header first, then one detail record per group of up to six segments,
// then the trailer. Every returned line has exactly the profile's record
// length. Transactions without segments emit nothing.
func (e *Encoder) Encode(txs []models.Transaction) ([]string, Totals) {
	var totals Totals

	records := []string{e.header()}
	seq := 1 // header holds sequence 1, details continue from 2

	for _, tx := range txs {
		for start := 0; start < len(tx.Segments); start += SegmentsPerRecord {
			end := start + SegmentsPerRecord
			if end > len(tx.Segments) {
				end = len(tx.Segments)
			}
			seq++
			records = append(records, e.detail(tx, tx.Segments[start:end], seq, &totals))
		}
	}

	records = append(records, e.trailer(seq+1, totals))
	return records, totals
}

// header renders the "A" record. Its layout is shared by both profiles up
// to the filler, which absorbs the length difference.
func (e *Encoder) header() string {
	var b strings.Builder
	b.WriteString("A")
	b.WriteString(padZero("1", 9))
	b.WriteString(padRight(e.cfg.OriginatorID, 10))
	b.WriteString(padZero(e.cfg.FileCreationNumber, 4))
	b.WriteString(julian.ShortDate(e.cfg.FileCreationDate))
	if e.cfg.DestinationDataCentre != "" {
		b.WriteString(padZero(e.cfg.DestinationDataCentre, 5))
	} else {
		b.WriteString(spaces(5))
	}
	b.WriteString(spaces(20))
	if e.cfg.DestinationCurrency != "" {
		b.WriteString(padRight(e.cfg.DestinationCurrency, 3))
	} else {
		b.WriteString(spaces(3))
	}
	return padRight(b.String(), e.profile.RecordLength)
}

// detail renders one "C" or "D" record holding up to six segments and
// folds their amounts into the running totals.
func (e *Encoder) detail(tx models.Transaction, segments []models.Segment, seq int, totals *Totals) string {
	var b strings.Builder
	b.WriteString(string(tx.Type))
	b.WriteString(padZero(strconv.Itoa(seq), 9))
	b.WriteString(padRight(e.cfg.OriginatorID, 10))
	b.WriteString(padZero(e.cfg.FileCreationNumber, 4))

	for i, seg := range segments {
		pos := i + 1
		b.WriteString(e.segment(seg, seq, pos))

		cents := seg.Amount.Shift(2).IntPart()
		if tx.IsDebit() {
			totals.DebitAmount += cents
			totals.DebitCount++
		} else {
			totals.CreditAmount += cents
			totals.CreditCount++
		}
	}

	return padRight(b.String(), e.profile.RecordLength)
}

// segment renders one fixed-width payment block. seq is the record's
// sequence number and pos the segment's 1-based position within the
// record; both feed the cross-reference fallback.
func (e *Encoder) segment(seg models.Segment, seq, pos int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%03d", seg.CPACode))
	b.WriteString(padZero(strconv.FormatInt(seg.Amount.Shift(2).IntPart(), 10), 10))
	b.WriteString(julian.ShortDate(seg.PaymentDate))
	b.WriteString(padZero(seg.BankInstitutionNumber, e.profile.InstitutionWidth))
	b.WriteString(padZero(seg.BankTransitNumber, 5))
	b.WriteString(padRight(seg.BankAccountNumber, 12))
	b.WriteString(e.itemTrace(seg, pos))
	b.WriteString(zeros(3))
	b.WriteString(padRight(e.cfg.OriginatorShortName, 15))
	b.WriteString(padRight(seg.PayeeName, 30))
	b.WriteString(padRight(e.cfg.OriginatorLongName, 30))
	b.WriteString(padRight(padRight(e.cfg.OriginatorID, 5), 10))
	b.WriteString(padRight(e.crossReference(seg, seq, pos), 19))
	// Return-item banking details: institution and transit for returns,
	// return account, sundry information, and the original item trace.
	// Returns are out of scope, so the region stays blank.
	b.WriteString(zeros(9))
	b.WriteString(spaces(12))
	b.WriteString(spaces(15))
	b.WriteString(spaces(22))
	b.WriteString(spaces(2))
	b.WriteString(zeros(11))
	return b.String()
}

// itemTrace renders the 22-character item trace field: all zeros unless
// the segment carries a bank-specific override, in which case the
// override (18 digits) is suffixed with the segment position.
func (e *Encoder) itemTrace(seg models.Segment, pos int) string {
	if seg.ItemTraceNumber == "" {
		return zeros(22)
	}
	return padZero(seg.ItemTraceNumber, 18) + fmt.Sprintf("%04d", pos)
}

// crossReference returns the supplied cross-reference number or the
// deterministic fallback tied to the physical record sequence.
func (e *Encoder) crossReference(seg models.Segment, seq, pos int) string {
	if seg.CrossReferenceNumber != "" {
		return seg.CrossReferenceNumber
	}
	return fmt.Sprintf("f%sr%ds%d", e.cfg.FileCreationNumber, seq, pos)
}

// trailer renders the "Z" record. seq is one past the last physical
// record sequence used, which makes it the trailer's own sequence number.
func (e *Encoder) trailer(seq int, totals Totals) string {
	var b strings.Builder
	b.WriteString("Z")
	b.WriteString(padZero(strconv.Itoa(seq), 9))
	b.WriteString(padRight(e.cfg.OriginatorID, 10))
	b.WriteString(padZero(e.cfg.FileCreationNumber, 4))
	b.WriteString(padZero(strconv.FormatInt(totals.DebitAmount, 10), 14))
	b.WriteString(padZero(strconv.FormatInt(totals.DebitCount, 10), 8))
	b.WriteString(padZero(strconv.FormatInt(totals.CreditAmount, 10), 14))
	b.WriteString(padZero(strconv.FormatInt(totals.CreditCount, 10), 8))
	return padRight(b.String(), e.profile.RecordLength)
}
