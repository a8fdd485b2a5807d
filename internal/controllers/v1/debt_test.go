package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/debtflow-control/backend/internal/controllers/v1"
	"github.com/debtflow-control/backend/internal/models"
	"github.com/debtflow-control/backend/internal/types"
	"github.com/debtflow-control/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDebt(t *testing.T, d v1.DebtEditable, expectedStatus ...int) v1.DebtResponse {
	if d.Description == "" {
		d.Description = uuid.NewString()
	}

	if d.TotalValue.IsZero() {
		d.TotalValue = decimal.NewFromFloat(1000)
	}

	if d.TotalInstallments == 0 {
		d.TotalInstallments = 10
	}

	if d.StartDate.IsZero() {
		d.StartDate = types.NewDay(2024, 1, 15)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.DebtEditable{d}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var debt v1.DebtCreateResponse
	test.DecodeResponse(t, &r, &debt)

	if r.Code == http.StatusCreated {
		return debt.Data[0]
	}

	return v1.DebtResponse{}
}

func (suite *TestSuiteStandard) TestDebtsCreate() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{
		Description:       "Financiamento do carro",
		TotalValue:        decimal.NewFromFloat(12000),
		DownPayment:       decimal.NewFromFloat(2000),
		TotalInstallments: 20,
		StartDate:         types.NewDay(2024, 1, 15),
		PaidInstallments:  2,
	})

	require.NotNil(suite.T(), debt.Data)

	suite.Assert().Equal("Financiamento do carro", debt.Data.Description)
	suite.Assert().Len(debt.Data.Installments, 20)
	suite.Assert().Equal(2, debt.Data.PaidInstallments)
	suite.Assert().Equal(10, debt.Data.Progress)

	require.NotNil(suite.T(), debt.Data.NextDueDate)
	suite.Assert().Equal("2024-03-15", debt.Data.NextDueDate.String())

	// installmentValue was not sent, it is derived from the financed
	// amount: (12000 - 2000) / 20
	suite.Assert().True(decimal.NewFromFloat(500).Equal(debt.Data.InstallmentValue), "installmentValue is %s", debt.Data.InstallmentValue)

	suite.Assert().Equal("2024-01-15", debt.Data.Installments[0].DueDate.String())
	suite.Assert().Equal("2024-02-15", debt.Data.Installments[1].DueDate.String())
	suite.Assert().True(debt.Data.Installments[0].IsPaid)
	suite.Assert().False(debt.Data.Installments[2].IsPaid)

	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/debts/%s", debt.Data.ID), debt.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestDebtsCreateInvalid() {
	tests := []struct {
		name string
		debt v1.DebtEditable
	}{
		{"no description", v1.DebtEditable{TotalValue: decimal.NewFromFloat(100), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15)}},
		{"negative total value", v1.DebtEditable{Description: "t", TotalValue: decimal.NewFromFloat(-1), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15)}},
		{"negative down payment", v1.DebtEditable{Description: "t", TotalValue: decimal.NewFromFloat(100), DownPayment: decimal.NewFromFloat(-1), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15)}},
		{"no installments", v1.DebtEditable{Description: "t", TotalValue: decimal.NewFromFloat(100), StartDate: types.NewDay(2024, 1, 15)}},
		{"no start date", v1.DebtEditable{Description: "t", TotalValue: decimal.NewFromFloat(100), TotalInstallments: 2}},
		{"paidInstallments above totalInstallments", v1.DebtEditable{Description: "t", TotalValue: decimal.NewFromFloat(100), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15), PaidInstallments: 3}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/debts", []v1.DebtEditable{tt.debt})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.DebtCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", `{ Invalid request": Body }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DebtCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Error)
}

// TestDebtsCreateMixed verifies that a batch with valid and invalid
// debts creates the valid ones and reports the error for the others.
func (suite *TestSuiteStandard) TestDebtsCreateMixed() {
	body := []v1.DebtEditable{
		{Description: "Valid", TotalValue: decimal.NewFromFloat(100), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15)},
		{Description: "", TotalValue: decimal.NewFromFloat(100), TotalInstallments: 2, StartDate: types.NewDay(2024, 1, 15)},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/debts", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DebtCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().NotNil(response.Data[0].Data)
	suite.Assert().NotNil(response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestDebtsList() {
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Cartão de crédito"})
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Financiamento do carro"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/debts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Cartão de crédito", response.Data[0].Description)

	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(2, response.Pagination.Total)
	suite.Assert().Equal(2, response.Pagination.Count)
	suite.Assert().Equal(50, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestDebtsListFilter() {
	// The unpaid debts start far in the future so they are on time no
	// matter when this test runs
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Cartão de crédito", StartDate: types.NewDay(2199, 1, 15)})
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Financiamento do carro", StartDate: types.NewDay(2199, 1, 15)})
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Financiamento da casa", TotalInstallments: 2, PaidInstallments: 2})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"description glob", "description=Financiamento*", 2},
		{"description glob no match", "description=Consórcio*", 0},
		{"search", "search=financ", 2},
		{"search is case insensitive", "search=CARTÃO", 1},
		{"status paid off", "status=PAID_OFF", 1},
		{"status on time", "status=ON_TIME", 2},
		{"limit", "limit=1", 1},
		{"offset", "offset=2", 1},
		{"offset beyond the collection", "offset=12", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/debts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.DebtListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsListInvalidStatus() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/debts?status=NOT_A_STATUS", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Error)
}

// TestDebtsListLate verifies that a debt with an overdue installment
// is reported as late.
func (suite *TestSuiteStandard) TestDebtsListLate() {
	_ = createTestDebt(suite.T(), v1.DebtEditable{Description: "Overdue", StartDate: types.NewDay(2020, 1, 15)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/debts?status=LATE", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DebtListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.StatusLate, response.Data[0].Status)
	suite.Assert().Equal("Atrasada", response.Data[0].StatusLabel)
}

func (suite *TestSuiteStandard) TestDebtsGetSingle() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Debt", debt.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Debt with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/debts/%s", tt.id), "")

			var response v1.DebtResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestDebtsUpdate verifies that editing values that do not affect the
// schedule keeps the existing installments untouched.
func (suite *TestSuiteStandard) TestDebtsUpdate() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{Description: "Old name", PaidInstallments: 1})

	installmentID := debt.Data.Installments[0].ID

	r := test.Request(suite.T(), http.MethodPatch, debt.Data.Links.Self, map[string]any{
		"description": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal("New name", updated.Data.Description)
	suite.Assert().Equal(installmentID, updated.Data.Installments[0].ID, "installments must not be regenerated")
	suite.Assert().True(updated.Data.Installments[0].IsPaid, "payment state must survive the edit")
}

// TestDebtsUpdateRegenerates verifies that editing a schedule parameter
// regenerates the installments.
func (suite *TestSuiteStandard) TestDebtsUpdateRegenerates() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{TotalInstallments: 10, PaidInstallments: 1})

	installmentID := debt.Data.Installments[0].ID

	r := test.Request(suite.T(), http.MethodPatch, debt.Data.Links.Self, map[string]any{
		"totalInstallments": 12,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.DebtResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Require().Len(updated.Data.Installments, 12)
	suite.Assert().NotEqual(installmentID, updated.Data.Installments[0].ID, "installments must be regenerated")
	suite.Assert().Equal(1, updated.Data.PaidInstallments, "paid count carries over on regeneration")
}

func (suite *TestSuiteStandard) TestDebtsUpdateInvalid() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"unparseable body", `{ Invalid request": Body }`},
		{"invalid value", map[string]any{"totalInstallments": 0}},
		{"negative total value", map[string]any{"totalValue": -100}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, debt.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtsDelete() {
	debt := createTestDebt(suite.T(), v1.DebtEditable{})

	r := test.Request(suite.T(), http.MethodDelete, debt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting an unknown ID returns a 404
	r = test.Request(suite.T(), http.MethodDelete, debt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestDebtsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestDebtsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Debts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Debt with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Debt exists", createTestDebt(suite.T(), v1.DebtEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/debts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestDebtsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestDebtsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestDebt(t, v1.DebtEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/debts", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.DebtListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
