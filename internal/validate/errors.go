package validate

import "fmt"

// FieldError reports a fatal, format-breaking problem with a single
// configuration field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// SegmentError reports a fatal problem with one segment of a transaction.
type SegmentError struct {
	TransactionID string
	Segment       int // 1-based position within the transaction
	Field         string
	Reason        string
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("transaction %s segment %d: invalid %s: %s",
		e.TransactionID, e.Segment, e.Field, e.Reason)
}

// TransactionError reports a fatal problem with a transaction as a whole.
type TransactionError struct {
	TransactionID string
	Reason        string
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.Reason)
}
