package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus indicates whether a debt has been fully settled.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

// Installment is one scheduled payment within a debt. It is paid iff
// PaidAmount is set.
type Installment struct {
	Number     int              `json:"number"` // 1-based sequence number
	DueDate    time.Time        `json:"dueDate"`
	Amount     *decimal.Decimal `json:"amount,omitempty"` // nominal; unset when the debt total is unknown
	PaidAmount *decimal.Decimal `json:"paidAmount,omitempty"`
	PaidDate   *time.Time       `json:"paidDate,omitempty"`
	ExpenseID  string           `json:"expenseID,omitempty"` // back-reference to the generated expense
}

// IsPaid reports whether a payment has been registered for this installment.
func (i Installment) IsPaid() bool {
	return i.PaidAmount != nil
}

// Remaining returns the nominal amount minus what has been paid so far, or
// nil when the nominal amount is unknown.
func (i Installment) Remaining() *decimal.Decimal {
	if i.Amount == nil {
		return nil
	}
	rem := *i.Amount
	if i.PaidAmount != nil {
		rem = rem.Sub(*i.PaidAmount)
	}
	return &rem
}

// Debt is a multi-installment obligation. Its installment sequence always has
// exactly InstallmentCount entries numbered 1..N, with due dates one calendar
// month apart starting at StartDate.
type Debt struct {
	DebtID            string           `json:"debtID"`
	Name              string           `json:"name"`
	TotalAmount       *decimal.Decimal `json:"totalAmount,omitempty"` // may be unknown
	InstallmentCount  int              `json:"installmentCount"`
	StartDate         time.Time        `json:"startDate"`
	Status            DebtStatus       `json:"status"`
	Description       string           `json:"description"`
	SharedWithPartner bool             `json:"sharedWithPartner"`
	CreatedBy         string           `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
	LastModified      time.Time        `json:"lastModified"`
	Installments      []Installment    `json:"installments"`
}

// GenerateInstallments rebuilds the installment schedule from the debt's
// current total amount, installment count and start date, discarding any
// existing payment state. Due dates use calendar month arithmetic, so the
// i-th installment is due StartDate plus i months; time.AddDate is total and
// always yields a date, so the schedule always has exactly InstallmentCount
// entries. Each nominal amount is TotalAmount / InstallmentCount, left unset
// when the total is unknown.
func (d *Debt) GenerateInstallments() {
	installments := make([]Installment, 0, d.InstallmentCount)
	var nominal *decimal.Decimal
	if d.TotalAmount != nil && d.InstallmentCount > 0 {
		amt := d.TotalAmount.Div(decimal.NewFromInt(int64(d.InstallmentCount)))
		nominal = &amt
	}
	for i := 0; i < d.InstallmentCount; i++ {
		inst := Installment{
			Number:  i + 1,
			DueDate: d.StartDate.AddDate(0, i, 0),
		}
		if nominal != nil {
			amt := *nominal
			inst.Amount = &amt
		}
		installments = append(installments, inst)
	}
	d.Installments = installments
}

// Regenerate replaces the total amount and installment count and rebuilds the
// schedule from the existing start date. All prior payment state is lost;
// this backs the explicit "edit debt" action only.
func (d *Debt) Regenerate(newTotal *decimal.Decimal, newCount int) {
	d.TotalAmount = newTotal
	d.InstallmentCount = newCount
	d.Status = DebtPending
	d.GenerateInstallments()
}

// FindInstallment returns a pointer to the installment with the given
// sequence number, or nil when no such installment exists.
func (d *Debt) FindInstallment(number int) *Installment {
	for i := range d.Installments {
		if d.Installments[i].Number == number {
			return &d.Installments[i]
		}
	}
	return nil
}

// AllPaid reports whether every installment has been paid.
func (d Debt) AllPaid() bool {
	for _, inst := range d.Installments {
		if !inst.IsPaid() {
			return false
		}
	}
	return true
}

// Progress returns the paid fraction of the schedule, in [0, 1].
func (d Debt) Progress() float64 {
	if d.InstallmentCount == 0 {
		return 0
	}
	paid := 0
	for _, inst := range d.Installments {
		if inst.IsPaid() {
			paid++
		}
	}
	return float64(paid) / float64(d.InstallmentCount)
}

// RemainingAmount returns the total amount minus the sum of registered
// payments, or nil when the total is unknown.
func (d Debt) RemainingAmount() *decimal.Decimal {
	if d.TotalAmount == nil {
		return nil
	}
	paid := decimal.Zero
	for _, inst := range d.Installments {
		if inst.PaidAmount != nil {
			paid = paid.Add(*inst.PaidAmount)
		}
	}
	rem := d.TotalAmount.Sub(paid)
	return &rem
}

// NextPaymentDate returns the due date of the first unpaid installment in
// sequence order, or nil when every installment is paid.
func (d Debt) NextPaymentDate() *time.Time {
	for _, inst := range d.Installments {
		if !inst.IsPaid() {
			due := inst.DueDate
			return &due
		}
	}
	return nil
}

// DebtSortCriteria selects the ordering of a debt listing.
type DebtSortCriteria string

const (
	SortByCreationDate    DebtSortCriteria = "creationDate"    // ascending
	SortByNextPaymentDate DebtSortCriteria = "nextPaymentDate" // ascending, fully paid debts last
	SortByProgress        DebtSortCriteria = "progress"        // descending
)

// SortDebts orders debts by the given criteria. The input slice is not
// modified; a sorted copy is returned.
func SortDebts(debts []Debt, criteria DebtSortCriteria) []Debt {
	sorted := make([]Debt, len(debts))
	copy(sorted, debts)
	switch criteria {
	case SortByNextPaymentDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nextPaymentOrDistantFuture(sorted[i]).Before(nextPaymentOrDistantFuture(sorted[j]))
		})
	case SortByProgress:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Progress() > sorted[j].Progress()
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	}
	return sorted
}

var distantFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

func nextPaymentOrDistantFuture(d Debt) time.Time {
	if next := d.NextPaymentDate(); next != nil {
		return *next
	}
	return distantFuture
}
