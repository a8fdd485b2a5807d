package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/debtflow-control/backend/internal/models"
	"github.com/debtflow-control/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Description       string          `json:"description" example:"Financiamento do carro" default:""` // What this debt is for
	TotalValue        decimal.Decimal `json:"totalValue" example:"12000.00"`                           // Full value of the debt
	DownPayment       decimal.Decimal `json:"downPayment" example:"2000.00" default:"0"`               // Amount paid up front
	InstallmentValue  decimal.Decimal `json:"installmentValue" example:"500.00"`                       // Amount of each installment. Derived from the other values when omitted
	TotalInstallments int             `json:"totalInstallments" example:"20" minimum:"1"`              // Number of monthly installments
	StartDate         types.Day       `json:"startDate" example:"2024-01-15"`                          // Due date of the first installment
	PaidInstallments  int             `json:"paidInstallments" example:"2" default:"0"`                // Installments already paid when the debt is registered
}

func (editable DebtEditable) validate() error {
	if strings.TrimSpace(editable.Description) == "" {
		return errDescriptionRequired
	}

	if editable.TotalValue.IsNegative() {
		return errTotalValueNegative
	}

	if editable.DownPayment.IsNegative() {
		return errDownPaymentNegative
	}

	if editable.InstallmentValue.IsNegative() {
		return errInstallmentValueNegative
	}

	if editable.TotalInstallments < 1 {
		return errTotalInstallmentsMinimum
	}

	if editable.StartDate.IsZero() {
		return errStartDateRequired
	}

	if editable.PaidInstallments < 0 || editable.PaidInstallments > editable.TotalInstallments {
		return errPaidInstallmentsRange
	}

	return nil
}

// installmentAmount returns the value of a single installment, deriving
// it from the financed amount when it was not sent.
func (editable DebtEditable) installmentAmount() decimal.Decimal {
	if !editable.InstallmentValue.IsZero() {
		return editable.InstallmentValue
	}

	return editable.TotalValue.
		Sub(editable.DownPayment).
		Div(decimal.NewFromInt(int64(editable.TotalInstallments))).
		Round(2)
}

func (editable DebtEditable) model(id uuid.UUID, createdAt, now time.Time) models.Debt {
	amount := editable.installmentAmount()

	return models.Debt{
		ID:                id,
		Description:       editable.Description,
		TotalValue:        editable.TotalValue,
		DownPayment:       editable.DownPayment,
		InstallmentValue:  amount,
		TotalInstallments: editable.TotalInstallments,
		StartDate:         editable.StartDate,
		Installments:      models.GenerateInstallments(editable.TotalInstallments, amount, editable.StartDate, editable.PaidInstallments, now),
		CreatedAt:         createdAt,
	}
}

type DebtLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/debts/65392deb-5e92-4268-b114-297faad6cdce"` // The debt itself
}

type Debt struct {
	models.Debt
	Links DebtLinks `json:"links"`

	// These fields are computed
	Status           models.DebtStatus `json:"status" example:"ON_TIME"`         // Schedule state of the debt
	StatusLabel      string            `json:"statusLabel" example:"Em dia"`     // Human readable status
	PaidInstallments int               `json:"paidInstallments" example:"2"`     // Number of paid installments
	Progress         int               `json:"progress" example:"10"`            // Percentage of the schedule that is paid
	NextDueDate      *types.Day        `json:"nextDueDate" example:"2024-03-15"` // Due date of the next unpaid installment
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	url := c.GetString(string(models.DBContextURL))

	status := model.Status(nowDay())

	var nextDueDate *types.Day
	if next, ok := model.NextUnpaid(); ok {
		nextDueDate = &next.DueDate
	}

	return Debt{
		Debt:             model,
		Status:           status,
		StatusLabel:      status.Label(),
		PaidInstallments: model.PaidCount(),
		Progress:         models.ScheduleProgress([]models.Debt{model}).Percentage,
		NextDueDate:      nextDueDate,
		Links: DebtLinks{
			Self: fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
		},
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of Debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"`                                                          // List of the created Debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the Debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DebtQueryFilter struct {
	Description string `form:"description"` // By description, supports globbing
	Search      string `form:"search"`      // Search for this text in the description
	Status      string `form:"status"`      // By status. One of ON_TIME, LATE, PAID_OFF
	Offset      uint   `form:"offset"`      // The offset of the first Debt returned. Defaults to 0.
	Limit       int    `form:"limit"`       // Maximum number of Debts to return. Defaults to 50.
}
