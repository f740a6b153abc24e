package common

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"jmorin/cpa005/internal/models"
)

// PaymentDateLayout is the payment date format accepted in CSV input.
const PaymentDateLayout = "2006-01-02"

// TransactionRow is one payment segment in the CSV input. Consecutive
// rows sharing a non-empty Group value become segments of a single
// transaction; rows without a Group stand alone.
type TransactionRow struct {
	Group          string `csv:"group"`
	Type           string `csv:"type"`
	CPACode        string `csv:"cpa_code"`
	Amount         string `csv:"amount"`
	PaymentDate    string `csv:"payment_date"`
	Institution    string `csv:"institution"`
	Transit        string `csv:"transit"`
	Account        string `csv:"account"`
	Payee          string `csv:"payee"`
	CrossReference string `csv:"cross_reference"`
	ItemTrace      string `csv:"item_trace"`
}

// RowsToTransactions converts CSV rows into transactions, grouping
// consecutive rows by their Group value.
func RowsToTransactions(rows []TransactionRow) ([]models.Transaction, error) {
	var txs []models.Transaction
	var builder *models.TransactionBuilder
	currentGroup := ""
	currentType := ""

	flush := func() error {
		if builder == nil {
			return nil
		}
		tx, err := builder.Build()
		if err != nil {
			return err
		}
		txs = append(txs, tx)
		builder = nil
		return nil
	}

	for i, row := range rows {
		seg, err := rowToSegment(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		newGroup := row.Group == "" || builder == nil || row.Group != currentGroup
		if newGroup {
			if err := flush(); err != nil {
				return nil, err
			}
			builder = models.NewTransactionBuilder().WithType(row.Type)
			currentGroup = row.Group
			currentType = row.Type
		} else if row.Type != currentType {
			return nil, fmt.Errorf("row %d: group '%s' mixes record types '%s' and '%s'",
				i+1, row.Group, currentType, row.Type)
		}
		builder = builder.AddSegment(seg)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return txs, nil
}

func rowToSegment(row TransactionRow) (models.Segment, error) {
	code, err := strconv.Atoi(row.CPACode)
	if err != nil {
		return models.Segment{}, fmt.Errorf("invalid CPA code '%s': %w", row.CPACode, err)
	}

	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return models.Segment{}, fmt.Errorf("invalid amount '%s': %w", row.Amount, err)
	}

	var paymentDate time.Time
	if row.PaymentDate != "" {
		paymentDate, err = time.Parse(PaymentDateLayout, row.PaymentDate)
		if err != nil {
			return models.Segment{}, fmt.Errorf("invalid payment date '%s': %w", row.PaymentDate, err)
		}
	}

	return models.Segment{
		CPACode:               code,
		Amount:                amount,
		PaymentDate:           paymentDate,
		BankInstitutionNumber: row.Institution,
		BankTransitNumber:     row.Transit,
		BankAccountNumber:     row.Account,
		PayeeName:             row.Payee,
		CrossReferenceNumber:  row.CrossReference,
		ItemTraceNumber:       row.ItemTrace,
	}, nil
}
