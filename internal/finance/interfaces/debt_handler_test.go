package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

func carLoan() domain.Debt {
	return domain.Debt{
		ID:             1,
		UserID:         1,
		Name:           "Car Loan",
		TotalOwed:      decimal.NewFromInt(1000),
		AmountPaid:     decimal.NewFromInt(200),
		MonthlyPayment: decimal.NewFromInt(100),
	}
}

func TestCreateDebt_Returns201WithDerivedFields(t *testing.T) {
	body := `{"userId":1,"debtName":"Car Loan","totalOwed":1000,"amountPaid":200,"monthlyPayment":100}`
	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.CreateDebt(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Car Loan", response["debtName"])
	assert.Equal(t, 800.0, response["remainingBalance"])
	assert.Equal(t, 20.0, response["paymentProgress"])
}

func TestCreateDebt_NullAmountPaidCoercedToZero(t *testing.T) {
	body := `{"userId":1,"debtName":"Car Loan","totalOwed":1000,"amountPaid":null,"monthlyPayment":100}`
	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.CreateDebt(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 0.0, response["amountPaid"])
	assert.Equal(t, 1000.0, response["remainingBalance"])
}

func TestCreateDebt_AmountPaidAboveTotalOwedReturns400(t *testing.T) {
	body := `{"userId":1,"debtName":"Car Loan","totalOwed":1000,"amountPaid":1500,"monthlyPayment":100}`
	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.CreateDebt(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Amount paid cannot exceed total owed", response["message"])
}

func TestCreateDebt_MalformedBodyReturns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/debts", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.CreateDebt(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestMakePayment_Returns200WithUpdatedDebt(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/debts/1/payment", strings.NewReader(`{"paymentAmount":800}`))
	req.SetPathValue("debtID", "1")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{debts: []domain.Debt{carLoan()}}, respondJSON)
	handler.MakePayment(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 1000.0, response["amountPaid"])
	assert.Equal(t, 0.0, response["remainingBalance"])
	assert.Equal(t, 100.0, response["paymentProgress"])
}

func TestMakePayment_OvershootReturns400WithMaximum(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/debts/1/payment", strings.NewReader(`{"paymentAmount":900}`))
	req.SetPathValue("debtID", "1")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{debts: []domain.Debt{carLoan()}}, respondJSON)
	handler.MakePayment(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Payment would exceed total owed. Maximum payment: 800", response["message"])
}

func TestMakePayment_UnknownDebtReturns404(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/debts/99/payment", strings.NewReader(`{"paymentAmount":50}`))
	req.SetPathValue("debtID", "99")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.MakePayment(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestMakePayment_InvalidDebtIDReturns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/debts/abc/payment", strings.NewReader(`{"paymentAmount":50}`))
	req.SetPathValue("debtID", "abc")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{}, respondJSON)
	handler.MakePayment(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetTotalRemainingDebt_Returns200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debts/user/1/total-remaining", nil)
	req.SetPathValue("userID", "1")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{debts: []domain.Debt{carLoan()}}, respondJSON)
	handler.GetTotalRemainingDebt(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "800\n", w.Body.String())
}

func TestGetActiveDebtsByUserID_FiltersPaidOff(t *testing.T) {
	paidOff := carLoan()
	paidOff.ID = 2
	paidOff.AmountPaid = paidOff.TotalOwed

	req := httptest.NewRequest(http.MethodGet, "/debts/user/1/active", nil)
	req.SetPathValue("userID", "1")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{debts: []domain.Debt{carLoan(), paidOff}}, respondJSON)
	handler.GetActiveDebtsByUserID(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var debts []map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&debts))
	require.Len(t, debts, 1)
	assert.Equal(t, 1.0, debts[0]["debtId"])
}

func TestDeleteDebt_Returns204(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/debts/1", nil)
	req.SetPathValue("debtID", "1")
	w := httptest.NewRecorder()

	handler := NewDebtHandler(&MockDebtService{debts: []domain.Debt{carLoan()}}, respondJSON)
	handler.DeleteDebt(w, req)

	assert.Equal(t, http.StatusNoContent, w.Result().StatusCode)
}
