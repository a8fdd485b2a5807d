package v1_test

import (
	"net/http"

	v1 "github.com/debtflow-control/backend/internal/controllers/v1"
	"github.com/debtflow-control/backend/internal/types"
	"github.com/debtflow-control/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(0, response.Data.Summary.DebtsCount)
	suite.Assert().True(response.Data.Summary.TotalDebt.IsZero())
	suite.Assert().Empty(response.Data.Overdue)
	suite.Assert().Equal(0, response.Data.Progress.Percentage)
	suite.Assert().Equal("R$ 0,00", response.Data.Formatted.TotalDebt)
}

func (suite *TestSuiteStandard) TestDashboard() {
	// 1000 total, 200 up front, 2 installments of 400 with one paid
	_ = createTestDebt(suite.T(), v1.DebtEditable{
		Description:       "Financiamento do carro",
		TotalValue:        decimal.NewFromFloat(1000),
		DownPayment:       decimal.NewFromFloat(200),
		TotalInstallments: 2,
		StartDate:         types.NewDay(2020, 1, 15),
		PaidInstallments:  1,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(1, response.Data.Summary.DebtsCount)
	suite.Assert().True(decimal.NewFromFloat(1000).Equal(response.Data.Summary.TotalDebt), "totalDebt is %s", response.Data.Summary.TotalDebt)
	suite.Assert().True(decimal.NewFromFloat(600).Equal(response.Data.Summary.TotalPaid), "totalPaid is %s", response.Data.Summary.TotalPaid)
	suite.Assert().True(decimal.NewFromFloat(400).Equal(response.Data.Summary.TotalRemaining), "totalRemaining is %s", response.Data.Summary.TotalRemaining)

	suite.Assert().Equal("R$ 1.000,00", response.Data.Formatted.TotalDebt)
	suite.Assert().Equal("R$ 600,00", response.Data.Formatted.TotalPaid)
	suite.Assert().Equal("R$ 400,00", response.Data.Formatted.TotalRemaining)

	// The second installment became due in 2020
	suite.Require().Len(response.Data.Overdue, 1)
	suite.Assert().Equal(2, response.Data.Overdue[0].Number)
	suite.Assert().Equal("Financiamento do carro", response.Data.Overdue[0].DebtName)

	suite.Assert().Equal(2, response.Data.Progress.TotalInstallments)
	suite.Assert().Equal(1, response.Data.Progress.PaidInstallments)
	suite.Assert().Equal(50, response.Data.Progress.Percentage)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
