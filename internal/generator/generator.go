// Package generator holds the configuration and transaction list for one
// CPA 005 file in progress and orchestrates validation and encoding.
package generator

import (
	"strings"

	"jmorin/cpa005/internal/encoder"
	"jmorin/cpa005/internal/logging"
	"jmorin/cpa005/internal/models"
	"jmorin/cpa005/internal/validate"
)

// LineSeparator joins the physical records of a file.
const LineSeparator = "\r\n"

// Generator accumulates transactions against one configuration and
// exports them as a CPA 005 file. It is not safe for concurrent
// mutation; callers adding transactions from multiple goroutines must
// serialize access themselves.
type Generator struct {
	cfg          models.Configuration
	profile      encoder.Profile
	transactions []models.Transaction
	logger       logging.Logger
}

// New creates a Generator using the standard layout profile. A nil
// logger defaults to a logrus-backed one.
func New(cfg models.Configuration, logger logging.Logger) *Generator {
	return NewWithProfile(cfg, encoder.ProfileStandard, logger)
}

// NewWithProfile creates a Generator for a specific destination-bank
// layout profile.
func NewWithProfile(cfg models.Configuration, profile encoder.Profile, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{
		cfg:     cfg,
		profile: profile,
		logger:  logger,
	}
}

// AddTransaction appends one transaction to the file in progress.
func (g *Generator) AddTransaction(tx models.Transaction) {
	g.transactions = append(g.transactions, tx)
}

// AddTransactions appends transactions in order.
func (g *Generator) AddTransactions(txs ...models.Transaction) {
	g.transactions = append(g.transactions, txs...)
}

// Configuration returns the configuration the Generator was created with.
func (g *Generator) Configuration() models.Configuration {
	return g.cfg
}

// Profile returns the selected layout profile.
func (g *Generator) Profile() encoder.Profile {
	return g.profile
}

// Transactions returns the accumulated transaction list.
func (g *Generator) Transactions() []models.Transaction {
	return g.transactions
}

// Export validates the configuration and transactions, encodes the
// record sequence and joins it with CRLF. Fatal validation problems
// abort before any output is produced; warnings are returned in the
// Result and logged. Export is all-or-nothing per call and leaves the
// Generator unchanged.
func (g *Generator) Export() (string, validate.Result, error) {
	cfg, result, err := validate.Configuration(g.cfg)
	if err != nil {
		g.logger.WithError(err).Error("configuration validation failed")
		return "", result, err
	}

	txResult, err := validate.Transactions(g.transactions)
	result.Merge(txResult)
	if err != nil {
		g.logger.WithError(err).Error("transaction validation failed")
		return "", result, err
	}

	for _, warning := range result.Warnings {
		g.logger.Warn(warning)
	}

	records, totals := encoder.New(cfg, g.profile).Encode(g.transactions)
	g.logger.Info("encoded CPA 005 file",
		logging.Field{Key: "records", Value: len(records)},
		logging.Field{Key: "creditCents", Value: totals.CreditAmount},
		logging.Field{Key: "debitCents", Value: totals.DebitAmount},
		logging.Field{Key: "warnings", Value: result.WarningCount()})

	return strings.Join(records, LineSeparator), result, nil
}
