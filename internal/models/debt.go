package models

import (
	"time"

	"github.com/debtflow-control/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus classifies a debt by its payment schedule.
type DebtStatus string

const (
	StatusOnTime  DebtStatus = "ON_TIME"
	StatusLate    DebtStatus = "LATE"
	StatusPaidOff DebtStatus = "PAID_OFF"
)

// Label returns the human readable name for the status.
func (s DebtStatus) Label() string {
	switch s {
	case StatusPaidOff:
		return "Quitada"
	case StatusLate:
		return "Atrasada"
	default:
		return "Em dia"
	}
}

// Installment is a single scheduled payment of a debt.
type Installment struct {
	ID       uuid.UUID       `json:"id" example:"d07595e8-6be3-4a1c-99d2-e55a5e94d84e"`
	Number   int             `json:"number" example:"1"`                      // Position in the schedule, starting at 1
	Value    decimal.Decimal `json:"value" example:"500.00"`                  // Amount of this installment
	DueDate  types.Day       `json:"dueDate" example:"2024-01-15"`            // Day this installment is due
	IsPaid   bool            `json:"isPaid" example:"false"`                  // Has this installment been paid?
	PaidDate *time.Time      `json:"paidDate" example:"2024-01-14T18:00:00Z"` // When the payment was registered
	Reminder *time.Time      `json:"reminder" example:"2024-01-13T09:00:00Z"` // Reminder timestamp, if one was set
}

// Debt is a tracked debt with its full installment schedule.
type Debt struct {
	ID                uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Description       string          `json:"description" example:"Financiamento do carro"`
	TotalValue        decimal.Decimal `json:"totalValue" example:"12000.00"`     // Full value of the debt
	DownPayment       decimal.Decimal `json:"downPayment" example:"2000.00"`     // Amount paid up front
	InstallmentValue  decimal.Decimal `json:"installmentValue" example:"500.00"` // Amount of each installment
	TotalInstallments int             `json:"totalInstallments" example:"20"`    // Number of installments
	StartDate         types.Day       `json:"startDate" example:"2024-01-15"`    // Due date of the first installment
	Installments      []Installment   `json:"installments"`                      // The payment schedule
	CreatedAt         time.Time       `json:"createdAt" example:"2024-01-01T12:00:00Z"`
}

// GenerateInstallments builds a payment schedule of count monthly
// installments, the first one due on firstDueDate. The first paidCount
// installments are marked as paid with now as the payment date,
// paidCount is clamped to [0, count].
func GenerateInstallments(count int, amount decimal.Decimal, firstDueDate types.Day, paidCount int, now time.Time) []Installment {
	if count < 0 {
		count = 0
	}

	if paidCount < 0 {
		paidCount = 0
	}
	if paidCount > count {
		paidCount = count
	}

	installments := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		installment := Installment{
			ID:      uuid.New(),
			Number:  i + 1,
			Value:   amount,
			DueDate: firstDueDate.AddMonths(i),
		}

		if i < paidCount {
			paidDate := now
			installment.IsPaid = true
			installment.PaidDate = &paidDate
		}

		installments = append(installments, installment)
	}

	return installments
}

// Status returns the schedule state of the debt as of today.
//
// A debt without unpaid installments is paid off, this takes precedence
// over any overdue due dates. An installment due today is not late yet.
func (d Debt) Status(today types.Day) DebtStatus {
	if d.paidOff() {
		return StatusPaidOff
	}

	for _, installment := range d.Installments {
		if !installment.IsPaid && installment.DueDate.Before(today) {
			return StatusLate
		}
	}

	return StatusOnTime
}

func (d Debt) paidOff() bool {
	for _, installment := range d.Installments {
		if !installment.IsPaid {
			return false
		}
	}

	return true
}

// PaidCount returns the number of paid installments.
func (d Debt) PaidCount() int {
	count := 0
	for _, installment := range d.Installments {
		if installment.IsPaid {
			count++
		}
	}

	return count
}

// PaidValue returns the amount already paid, including the down payment.
func (d Debt) PaidValue() decimal.Decimal {
	paid := d.DownPayment

	for _, installment := range d.Installments {
		if installment.IsPaid {
			paid = paid.Add(installment.Value)
		}
	}

	return paid
}

// NextUnpaid returns the first unpaid installment in schedule order.
// The second return value is false when the debt is paid off.
func (d Debt) NextUnpaid() (Installment, bool) {
	for _, installment := range d.Installments {
		if !installment.IsPaid {
			return installment, true
		}
	}

	return Installment{}, false
}
