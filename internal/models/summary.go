package models

import (
	"github.com/debtflow-control/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the financial state of all debts.
type DashboardSummary struct {
	TotalDebt      decimal.Decimal `json:"totalDebt" example:"12000.00"`     // Sum of all total values
	TotalPaid      decimal.Decimal `json:"totalPaid" example:"4000.00"`      // Down payments plus paid installments
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"8000.00"` // What is still open
	DebtsCount     int             `json:"debtsCount" example:"3"`           // Number of tracked debts
}

// OverdueInstallment is an unpaid installment past its due date,
// annotated with the debt it belongs to.
type OverdueInstallment struct {
	Installment
	DebtID   uuid.UUID `json:"debtId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	DebtName string    `json:"debtName" example:"Financiamento do carro"`
}

// Progress is the overall payment progress across all schedules.
type Progress struct {
	TotalInstallments int `json:"totalInstallments" example:"20"`
	PaidInstallments  int `json:"paidInstallments" example:"5"`
	Percentage        int `json:"percentage" example:"25"` // Paid share in whole percent
}

// Summarize computes the dashboard totals for the debt collection.
func Summarize(debts []Debt) DashboardSummary {
	summary := DashboardSummary{
		TotalDebt:      decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
		DebtsCount:     len(debts),
	}

	for _, debt := range debts {
		summary.TotalDebt = summary.TotalDebt.Add(debt.TotalValue)
		summary.TotalPaid = summary.TotalPaid.Add(debt.PaidValue())
	}

	summary.TotalRemaining = summary.TotalDebt.Sub(summary.TotalPaid)
	return summary
}

// OverdueInstallments returns all unpaid installments due before today,
// in collection and schedule order.
func OverdueInstallments(debts []Debt, today types.Day) []OverdueInstallment {
	overdue := make([]OverdueInstallment, 0)

	for _, debt := range debts {
		for _, installment := range debt.Installments {
			if !installment.IsPaid && installment.DueDate.Before(today) {
				overdue = append(overdue, OverdueInstallment{
					Installment: installment,
					DebtID:      debt.ID,
					DebtName:    debt.Description,
				})
			}
		}
	}

	return overdue
}

// ScheduleProgress computes the paid share across all schedules.
func ScheduleProgress(debts []Debt) Progress {
	var progress Progress

	for _, debt := range debts {
		progress.TotalInstallments += len(debt.Installments)
		progress.PaidInstallments += debt.PaidCount()
	}

	if progress.TotalInstallments > 0 {
		progress.Percentage = int(float64(progress.PaidInstallments)/float64(progress.TotalInstallments)*100 + 0.5)
	}

	return progress
}
