package models_test

import (
	"testing"
	"time"

	"github.com/debtflow-control/backend/internal/models"
	"github.com/debtflow-control/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDebt builds a debt with a freshly generated schedule.
func testDebt(description string, count, paidCount int) models.Debt {
	amount := decimal.NewFromFloat(100)

	return models.Debt{
		ID:                uuid.New(),
		Description:       description,
		TotalValue:        decimal.NewFromFloat(100 * float64(count)),
		DownPayment:       decimal.Zero,
		InstallmentValue:  amount,
		TotalInstallments: count,
		StartDate:         types.NewDay(2024, 1, 15),
		Installments:      models.GenerateInstallments(count, amount, types.NewDay(2024, 1, 15), paidCount, time.Now()),
		CreatedAt:         time.Now().UTC(),
	}
}

func (suite *TestSuiteStandard) TestGetDebtsEmpty() {
	debts, err := models.GetDebts()

	suite.Require().NoError(err)
	suite.Assert().Empty(debts, "a missing slot must read as an empty collection")
}

func (suite *TestSuiteStandard) TestSaveDebtRoundTrip() {
	debt := testDebt("Round trip", 3, 1)

	suite.Require().NoError(models.SaveDebt(debt))

	debts, err := models.GetDebts()
	suite.Require().NoError(err)
	suite.Require().Len(debts, 1)

	got := debts[0]
	suite.Assert().Equal(debt.ID, got.ID)
	suite.Assert().Equal(debt.Description, got.Description)
	suite.Assert().True(debt.TotalValue.Equal(got.TotalValue))
	suite.Assert().Equal(debt.TotalInstallments, got.TotalInstallments)
	suite.Require().Len(got.Installments, 3)

	for i, installment := range got.Installments {
		suite.Assert().Equal(debt.Installments[i].ID, installment.ID)
		suite.Assert().Equal(debt.Installments[i].Number, installment.Number)
		suite.Assert().True(debt.Installments[i].DueDate.Equal(installment.DueDate))
		suite.Assert().Equal(debt.Installments[i].IsPaid, installment.IsPaid)
	}
}

func (suite *TestSuiteStandard) TestSaveDebtReplacesInPlace() {
	first := testDebt("First", 2, 0)
	second := testDebt("Second", 2, 0)
	third := testDebt("Third", 2, 0)

	for _, debt := range []models.Debt{first, second, third} {
		suite.Require().NoError(models.SaveDebt(debt))
	}

	// Saving a record with a known ID replaces it without duplicating
	// or reordering
	second.Description = "Second, edited"
	suite.Require().NoError(models.SaveDebt(second))

	debts, err := models.GetDebts()
	suite.Require().NoError(err)
	suite.Require().Len(debts, 3)

	suite.Assert().Equal("First", debts[0].Description)
	suite.Assert().Equal("Second, edited", debts[1].Description)
	suite.Assert().Equal("Third", debts[2].Description)
}

func (suite *TestSuiteStandard) TestDeleteDebt() {
	first := testDebt("Keep me", 2, 0)
	second := testDebt("Delete me", 2, 0)
	third := testDebt("Keep me too", 2, 0)

	for _, debt := range []models.Debt{first, second, third} {
		suite.Require().NoError(models.SaveDebt(debt))
	}

	suite.Require().NoError(models.DeleteDebt(second.ID))

	debts, err := models.GetDebts()
	suite.Require().NoError(err)
	suite.Require().Len(debts, 2)
	suite.Assert().Equal(first.ID, debts[0].ID)
	suite.Assert().Equal(third.ID, debts[1].ID)

	// Deleting an unknown ID leaves the collection unchanged
	suite.Require().NoError(models.DeleteDebt(uuid.New()))

	debts, err = models.GetDebts()
	suite.Require().NoError(err)
	suite.Assert().Len(debts, 2)
}

func (suite *TestSuiteStandard) TestTogglePayment() {
	debt := testDebt("Toggle", 2, 0)
	suite.Require().NoError(models.SaveDebt(debt))

	target := debt.Installments[0]
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	updated, err := models.TogglePayment(debt.ID, target.ID, true, now)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated)

	suite.Assert().True(updated.Installments[0].IsPaid)
	suite.Require().NotNil(updated.Installments[0].PaidDate)
	suite.Assert().Equal(now, *updated.Installments[0].PaidDate)
	suite.Assert().False(updated.Installments[1].IsPaid, "other installments stay untouched")

	// Toggling with the same target state is idempotent
	updated, err = models.TogglePayment(debt.ID, target.ID, true, now)
	suite.Require().NoError(err)
	suite.Assert().True(updated.Installments[0].IsPaid)

	// Toggling back clears the payment date
	updated, err = models.TogglePayment(debt.ID, target.ID, false, now)
	suite.Require().NoError(err)
	suite.Assert().False(updated.Installments[0].IsPaid)
	suite.Assert().Nil(updated.Installments[0].PaidDate)

	// The mutation is persisted, not just returned
	debts, err := models.GetDebts()
	suite.Require().NoError(err)
	suite.Assert().False(debts[0].Installments[0].IsPaid)
}

func (suite *TestSuiteStandard) TestTogglePaymentNotFound() {
	debt := testDebt("Exists", 2, 0)
	suite.Require().NoError(models.SaveDebt(debt))

	tests := []struct {
		name          string
		debtID        uuid.UUID
		installmentID uuid.UUID
		wantErr       error
	}{
		{"unknown debt", uuid.New(), debt.Installments[0].ID, models.ErrDebtNotFound},
		{"unknown installment", debt.ID, uuid.New(), models.ErrInstallmentNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			updated, err := models.TogglePayment(tt.debtID, tt.installmentID, true, time.Now())

			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, models.ErrResourceNotFound)
			assert.Nil(t, updated)
		})
	}
}

func (suite *TestSuiteStandard) TestSetReminder() {
	debt := testDebt("Reminder", 2, 0)
	suite.Require().NoError(models.SaveDebt(debt))

	reminder := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)

	updated, err := models.SetReminder(debt.ID, debt.Installments[1].ID, reminder)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.Installments[1].Reminder)
	suite.Assert().Equal(reminder, *updated.Installments[1].Reminder)
	suite.Assert().False(updated.Installments[1].IsPaid, "reminder does not touch payment state")

	_, err = models.SetReminder(uuid.New(), debt.Installments[1].ID, reminder)
	suite.Assert().ErrorIs(err, models.ErrDebtNotFound)
}

func (suite *TestSuiteStandard) TestClearData() {
	suite.Require().NoError(models.SaveDebt(testDebt("Doomed", 2, 0)))

	suite.Require().NoError(models.ClearData())

	debts, err := models.GetDebts()
	suite.Require().NoError(err)
	suite.Assert().Empty(debts)
}
