package v1

import (
	"errors"
	"net/http"

	"github.com/debtflow-control/backend/internal/advice"
	"github.com/debtflow-control/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, advice.ErrInFlight) {
		return http.StatusTooManyRequests
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Debt validation errors
var (
	errDescriptionRequired      = errors.New("the description must be set")
	errTotalValueNegative       = errors.New("the total value must not be negative")
	errDownPaymentNegative      = errors.New("the down payment must not be negative")
	errInstallmentValueNegative = errors.New("the installment value must not be negative")
	errTotalInstallmentsMinimum = errors.New("a debt needs at least one installment")
	errStartDateRequired        = errors.New("the start date must be set")
	errPaidInstallmentsRange    = errors.New("paidInstallments must be between 0 and totalInstallments")
	errStatusInvalid            = errors.New("the specified status filter is invalid")
	errReminderRequired         = errors.New("the reminder timestamp must be set")
)
