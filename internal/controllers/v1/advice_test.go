package v1_test

import (
	"net/http"
	"os"

	"github.com/debtflow-control/backend/internal/advice"
	v1 "github.com/debtflow-control/backend/internal/controllers/v1"
	"github.com/debtflow-control/backend/test"
)

// TestAdviceFallback verifies that without a configured API key the
// endpoint answers with the fallback sentence instead of an error.
func (suite *TestSuiteStandard) TestAdviceFallback() {
	os.Unsetenv("GEMINI_API_KEY")

	_ = createTestDebt(suite.T(), v1.DebtEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AdviceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(advice.Fallback, response.Data.Answer)
}

func (suite *TestSuiteStandard) TestAdviceDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/advice", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
