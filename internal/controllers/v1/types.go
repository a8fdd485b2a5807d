package v1

import (
	"time"

	"github.com/debtflow-control/backend/internal/types"
	df_uuid "github.com/debtflow-control/backend/internal/uuid"
)

// nowDay returns the current calendar date. All status computations for
// one request use it so that they agree on what "today" is.
func nowDay() types.Day {
	return types.DayOf(time.Now())
}

type URIID struct {
	ID df_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIInstallment struct {
	URIID
	InstallmentID df_uuid.UUID `uri:"installmentId" binding:"required" format:"UUID"` // ID of the installment
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}
