package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/debtflow-control/backend/internal/httputil"
	"github.com/debtflow-control/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}

	// Installments of a debt
	{
		r.OPTIONS("/:id/installments/:installmentId/payment", OptionsInstallmentPayment)
		r.PATCH("/:id/installments/:installmentId/payment", UpdateInstallmentPayment)
		r.OPTIONS("/:id/installments/:installmentId/reminder", OptionsInstallmentReminder)
		r.PATCH("/:id/installments/:installmentId/reminder", UpdateInstallmentReminder)
	}
}

// findDebt returns the debt with the given ID from the collection.
func findDebt(id uuid.UUID) (models.Debt, error) {
	debts, err := models.GetDebts()
	if err != nil {
		return models.Debt{}, err
	}

	for _, debt := range debts {
		if debt.ID == id {
			return debt, nil
		}
	}

	return models.Debt{}, models.ErrDebtNotFound
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_, err = findDebt(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create debts
// @Description	Creates new debts, generating the installment schedule for each
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, editable := range editables {
		err := editable.validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		now := time.Now().UTC()
		debt := editable.model(uuid.New(), now, now)

		err = models.SaveDebt(debt)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebt(c, debt)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get debts
// @Description	Returns a list of debts
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		400	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			description	query	string	false	"Filter by description, supports globbing"
// @Param			search		query	string	false	"Search for this text in the description"
// @Param			status		query	string	false	"Filter by status. One of ON_TIME, LATE, PAID_OFF"
// @Param			offset		query	uint	false	"The offset of the first Debt returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	if filter.Status != "" && !slices.Contains([]string{
		string(models.StatusOnTime),
		string(models.StatusLate),
		string(models.StatusPaidOff),
	}, filter.Status) {
		s := errStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, DebtListResponse{
			Error: &s,
		})
		return
	}

	debts, err := models.GetDebts()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	filtered := filterDebts(debts, filter)

	// Set the offset. Does not need checking since the default is 0
	offset := int(filter.Offset)
	if offset > len(filtered) {
		offset = len(filtered)
	}

	// Default to 50 Debts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	end := len(filtered)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	data := make([]Debt, 0, end-offset)
	for _, debt := range filtered[offset:end] {
		data = append(data, newDebt(c, debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  len(filtered),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// filterDebts applies the query filter to the collection, keeping the
// collection order.
func filterDebts(debts []models.Debt, filter DebtQueryFilter) []models.Debt {
	today := nowDay()

	filtered := make([]models.Debt, 0, len(debts))
	for _, debt := range debts {
		if filter.Description != "" && !glob.Glob(filter.Description, debt.Description) {
			continue
		}

		if filter.Search != "" && !strings.Contains(strings.ToLower(debt.Description), strings.ToLower(filter.Search)) {
			continue
		}

		if filter.Status != "" && string(debt.Status(today)) != filter.Status {
			continue
		}

		filtered = append(filtered, debt)
	}

	return filtered
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	debt, err := findDebt(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Update debt
// @Description	Updates an existing debt. Only values to be updated need to be specified. When the schedule parameters change, the installments are regenerated and payment state not covered by paidInstallments is lost.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	debt, err := findDebt(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	// Values not sent in the body keep their current value
	editable := DebtEditable{
		Description:       debt.Description,
		TotalValue:        debt.TotalValue,
		DownPayment:       debt.DownPayment,
		InstallmentValue:  debt.InstallmentValue,
		TotalInstallments: debt.TotalInstallments,
		StartDate:         debt.StartDate,
		PaidInstallments:  debt.PaidCount(),
	}

	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = editable.validate()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	// When the schedule parameters change, the whole schedule is
	// regenerated. Payments beyond paidInstallments are lost, which
	// mirrors registering the debt anew with the changed terms.
	// Sending a schedule parameter with its current value is not a
	// change.
	scheduleEdited := slices.Contains(updateFields, "TotalInstallments") ||
		slices.Contains(updateFields, "InstallmentValue") ||
		slices.Contains(updateFields, "StartDate") ||
		slices.Contains(updateFields, "PaidInstallments")

	regenerate := scheduleEdited && (editable.TotalInstallments != debt.TotalInstallments ||
		!editable.installmentAmount().Equal(debt.InstallmentValue) ||
		!editable.StartDate.Equal(debt.StartDate) ||
		editable.PaidInstallments != debt.PaidCount())

	if regenerate {
		debt = editable.model(debt.ID, debt.CreatedAt, time.Now().UTC())
	} else {
		debt.Description = editable.Description
		debt.TotalValue = editable.TotalValue
		debt.DownPayment = editable.DownPayment
	}

	err = models.SaveDebt(debt)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Delete debt
// @Description	Deletes a debt and its installment schedule
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	_, err = findDebt(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteDebt(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
