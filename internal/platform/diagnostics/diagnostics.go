// Package diagnostics exposes counters for the permissive no-op paths of the
// core engines. Not-found installments, duplicate postings and malformed
// stored documents are deliberately swallowed instead of surfacing as errors;
// these counters let tests and operators observe that those paths were taken.
package diagnostics

import "sync/atomic"

// Diagnostics counts permissive no-op events. All methods are safe for
// concurrent use and safe on a nil receiver, so callers may wire a nil sink.
type Diagnostics struct {
	installmentNotFound  atomic.Int64
	duplicateTransaction atomic.Int64
	malformedDocument    atomic.Int64
	missingAccount       atomic.Int64
}

// InstallmentNotFound records a payment or undo aimed at a nonexistent
// installment number.
func (d *Diagnostics) InstallmentNotFound() {
	if d != nil {
		d.installmentNotFound.Add(1)
	}
}

// DuplicateTransaction records a rejected duplicate posting for an expense.
func (d *Diagnostics) DuplicateTransaction() {
	if d != nil {
		d.duplicateTransaction.Add(1)
	}
}

// MalformedDocument records a stored document that failed to decode and was
// skipped while loading a collection snapshot.
func (d *Diagnostics) MalformedDocument() {
	if d != nil {
		d.malformedDocument.Add(1)
	}
}

// MissingAccount records a backfill or registration that no-oped because no
// account exists to post against.
func (d *Diagnostics) MissingAccount() {
	if d != nil {
		d.missingAccount.Add(1)
	}
}

// InstallmentNotFoundCount returns the number of recorded not-found installments.
func (d *Diagnostics) InstallmentNotFoundCount() int64 {
	if d == nil {
		return 0
	}
	return d.installmentNotFound.Load()
}

// DuplicateTransactionCount returns the number of rejected duplicate postings.
func (d *Diagnostics) DuplicateTransactionCount() int64 {
	if d == nil {
		return 0
	}
	return d.duplicateTransaction.Load()
}

// MalformedDocumentCount returns the number of skipped documents.
func (d *Diagnostics) MalformedDocumentCount() int64 {
	if d == nil {
		return 0
	}
	return d.malformedDocument.Load()
}

// MissingAccountCount returns the number of postings skipped for lack of accounts.
func (d *Diagnostics) MissingAccountCount() int64 {
	if d == nil {
		return 0
	}
	return d.missingAccount.Load()
}
