package v1

import (
	"net/http"
	"time"

	"github.com/debtflow-control/backend/internal/calendar"
	"github.com/debtflow-control/backend/internal/httputil"
	"github.com/debtflow-control/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InstallmentPaymentEditable sets the payment state of an installment.
type InstallmentPaymentEditable struct {
	IsPaid bool `json:"isPaid" example:"true"` // Is the installment paid?
}

// InstallmentReminderEditable sets the reminder of an installment.
type InstallmentReminderEditable struct {
	Reminder time.Time `json:"reminder" example:"2024-01-13T09:00:00Z"` // When to be reminded of the payment
}

type ReminderLinks struct {
	Calendar string `json:"calendar" example:"https://calendar.google.com/calendar/render?action=TEMPLATE"` // Google Calendar event link for this reminder
}

type Reminder struct {
	Debt  Debt          `json:"debt"` // The updated debt
	Links ReminderLinks `json:"links"`
}

type ReminderResponse struct {
	Data  *Reminder `json:"data"`                                                          // Data for the reminder
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// findInstallment returns the debt and the addressed installment.
func findInstallment(debtID, installmentID uuid.UUID) (models.Debt, models.Installment, error) {
	debt, err := findDebt(debtID)
	if err != nil {
		return models.Debt{}, models.Installment{}, err
	}

	for _, installment := range debt.Installments {
		if installment.ID == installmentID {
			return debt, installment, nil
		}
	}

	return models.Debt{}, models.Installment{}, models.ErrInstallmentNotFound
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id				path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installmentId	path	string	true	"ID of the installment"
// @Router			/v1/debts/{id}/installments/{installmentId}/payment [options]
func OptionsInstallmentPayment(c *gin.Context) {
	optionsInstallment(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Installments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id				path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installmentId	path	string	true	"ID of the installment"
// @Router			/v1/debts/{id}/installments/{installmentId}/reminder [options]
func OptionsInstallmentReminder(c *gin.Context) {
	optionsInstallment(c)
}

func optionsInstallment(c *gin.Context) {
	var uri URIInstallment
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_, _, err = findInstallment(uri.ID.UUID, uri.InstallmentID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Update payment state
// @Description	Marks an installment as paid or unpaid. Marking it as paid records the payment date, marking it as unpaid clears it.
// @Tags			Installments
// @Accept			json
// @Produce		json
// @Success		200				{object}	DebtResponse
// @Failure		400				{object}	DebtResponse
// @Failure		404				{object}	DebtResponse
// @Failure		500				{object}	DebtResponse
// @Param			id				path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installmentId	path		string						true	"ID of the installment"
// @Param			payment			body		InstallmentPaymentEditable	true	"Payment state"
// @Router			/v1/debts/{id}/installments/{installmentId}/payment [patch]
func UpdateInstallmentPayment(c *gin.Context) {
	var uri URIInstallment
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var editable InstallmentPaymentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	debt, err := models.TogglePayment(uri.ID.UUID, uri.InstallmentID.UUID, editable.IsPaid, time.Now().UTC())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, *debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Set reminder
// @Description	Sets a payment reminder for an installment and returns a Google Calendar event link for it
// @Tags			Installments
// @Accept			json
// @Produce		json
// @Success		200				{object}	ReminderResponse
// @Failure		400				{object}	ReminderResponse
// @Failure		404				{object}	ReminderResponse
// @Failure		500				{object}	ReminderResponse
// @Param			id				path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installmentId	path		string						true	"ID of the installment"
// @Param			reminder		body		InstallmentReminderEditable	true	"Reminder"
// @Router			/v1/debts/{id}/installments/{installmentId}/reminder [patch]
func UpdateInstallmentReminder(c *gin.Context) {
	var uri URIInstallment
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var editable InstallmentReminderEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	if editable.Reminder.IsZero() {
		s := errReminderRequired.Error()
		c.JSON(http.StatusBadRequest, ReminderResponse{
			Error: &s,
		})
		return
	}

	debt, err := models.SetReminder(uri.ID.UUID, uri.InstallmentID.UUID, editable.Reminder)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReminderResponse{
			Error: &s,
		})
		return
	}

	var installment models.Installment
	for _, i := range debt.Installments {
		if i.ID == uri.InstallmentID.UUID {
			installment = i
			break
		}
	}

	data := Reminder{
		Debt: newDebt(c, *debt),
		Links: ReminderLinks{
			Calendar: calendar.PaymentReminderURL(*debt, installment, editable.Reminder),
		},
	}

	c.JSON(http.StatusOK, ReminderResponse{Data: &data})
}
