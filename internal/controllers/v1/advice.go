package v1

import (
	"net/http"
	"os"
	"sync"

	"github.com/debtflow-control/backend/internal/advice"
	"github.com/debtflow-control/backend/internal/httputil"
	"github.com/debtflow-control/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Advice struct {
	Answer string `json:"answer" example:"Priorize a dívida do cartão, que já está atrasada."` // The generated recommendation
}

type AdviceResponse struct {
	Data  *Advice `json:"data"`                                                          // Data for the advice
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// adviceService is shared between requests so that the in-flight guard
// and the cache work across the whole process.
var adviceService = sync.OnceValue(func() *advice.Service {
	return advice.NewService(advice.NewCache(os.Getenv("REDIS_ADDR")))
})

// RegisterAdviceRoutes registers the routes for advice with
// the RouterGroup that is passed.
func RegisterAdviceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAdvice)
	r.POST("", CreateAdvice)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Advice
// @Success		204
// @Router			/v1/advice [options]
func OptionsAdvice(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Generate advice
// @Description	Generates a short prioritization recommendation over all debts. When the service is unavailable, a fixed fallback sentence is returned instead of an error.
// @Tags			Advice
// @Produce		json
// @Success		200	{object}	AdviceResponse
// @Failure		429	{object}	AdviceResponse
// @Failure		500	{object}	AdviceResponse
// @Router			/v1/advice [post]
func CreateAdvice(c *gin.Context) {
	debts, err := models.GetDebts()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &s,
		})
		return
	}

	answer, err := adviceService().Analyze(c.Request.Context(), debts, nowDay())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AdviceResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{Data: &Advice{Answer: answer}})
}
