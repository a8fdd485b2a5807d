package v1

import (
	"net/http"

	"github.com/debtflow-control/backend/internal/format"
	"github.com/debtflow-control/backend/internal/httputil"
	"github.com/debtflow-control/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Summary   models.DashboardSummary     `json:"summary"`   // Aggregated financial state
	Formatted DashboardFormatted          `json:"formatted"` // The summary amounts, formatted for display
	Overdue   []models.OverdueInstallment `json:"overdue"`   // Unpaid installments past their due date
	Progress  models.Progress             `json:"progress"`  // Payment progress across all schedules
}

// DashboardFormatted carries the summary amounts as display strings.
type DashboardFormatted struct {
	TotalDebt      string `json:"totalDebt" example:"R$ 12.000,00"`
	TotalPaid      string `json:"totalPaid" example:"R$ 4.000,00"`
	TotalRemaining string `json:"totalRemaining" example:"R$ 8.000,00"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // Data for the dashboard
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the aggregated state of all debts: totals, overdue installments and payment progress
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	debts, err := models.GetDebts()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	summary := models.Summarize(debts)

	data := Dashboard{
		Summary: summary,
		Formatted: DashboardFormatted{
			TotalDebt:      format.Currency(summary.TotalDebt),
			TotalPaid:      format.Currency(summary.TotalPaid),
			TotalRemaining: format.Currency(summary.TotalRemaining),
		},
		Overdue:  models.OverdueInstallments(debts, nowDay()),
		Progress: models.ScheduleProgress(debts),
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
