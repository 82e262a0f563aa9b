package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type DebtServiceInterface interface {
	GetAllDebts() ([]domain.Debt, error)
	GetDebtByID(debtID int) (*domain.Debt, error)
	GetDebtsByUserID(userID int) ([]domain.Debt, error)
	GetActiveDebtsByUserID(userID int) ([]domain.Debt, error)
	GetPaidOffDebtsByUserID(userID int) ([]domain.Debt, error)
	GetTotalRemainingDebt(userID int) (decimal.Decimal, error)
	CreateDebt(userID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error)
	UpdateDebt(debtID int, debtName string, totalOwed, amountPaid, monthlyPayment decimal.Decimal) (*domain.Debt, error)
	MakePayment(debtID int, paymentAmount decimal.Decimal) (*domain.Debt, error)
	DeleteDebt(debtID int) error
}

type DebtHandler struct {
	service     DebtServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewDebtHandler(
	service DebtServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *DebtHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response functions must not be nil")
	}
	return &DebtHandler{service: service, respondJSON: respondJSON}
}

// debtRequest covers create and update. A null amountPaid means "nothing
// paid yet" and is coerced to zero.
type debtRequest struct {
	UserID         int              `json:"userId"`
	Name           string           `json:"debtName"`
	TotalOwed      decimal.Decimal  `json:"totalOwed"`
	AmountPaid     *decimal.Decimal `json:"amountPaid"`
	MonthlyPayment decimal.Decimal  `json:"monthlyPayment"`
}

func (r debtRequest) amountPaidOrZero() decimal.Decimal {
	if r.AmountPaid == nil {
		return decimal.Zero
	}
	return *r.AmountPaid
}

type paymentRequest struct {
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
}

func (h *DebtHandler) GetAllDebts(w http.ResponseWriter, _ *http.Request) {
	debts, err := h.service.GetAllDebts()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debts)
}

func (h *DebtHandler) GetDebtByID(w http.ResponseWriter, r *http.Request) {
	debtID, err := strconv.Atoi(r.PathValue("debtID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}

	debt, err := h.service.GetDebtByID(debtID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

func (h *DebtHandler) GetDebtsByUserID(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, h.service.GetDebtsByUserID)
}

func (h *DebtHandler) GetActiveDebtsByUserID(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, h.service.GetActiveDebtsByUserID)
}

func (h *DebtHandler) GetPaidOffDebtsByUserID(w http.ResponseWriter, r *http.Request) {
	h.listForUser(w, r, h.service.GetPaidOffDebtsByUserID)
}

func (h *DebtHandler) listForUser(w http.ResponseWriter, r *http.Request, list func(int) ([]domain.Debt, error)) {
	userID, err := strconv.Atoi(r.PathValue("userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	debts, err := list(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debts)
}

func (h *DebtHandler) GetTotalRemainingDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	total, err := h.service.GetTotalRemainingDebt(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, total)
}

func (h *DebtHandler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	debt, err := h.service.CreateDebt(req.UserID, req.Name, req.TotalOwed, req.amountPaidOrZero(), req.MonthlyPayment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, debt)
}

func (h *DebtHandler) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	debtID, err := strconv.Atoi(r.PathValue("debtID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}

	var req debtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	debt, err := h.service.UpdateDebt(debtID, req.Name, req.TotalOwed, req.amountPaidOrZero(), req.MonthlyPayment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

func (h *DebtHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	debtID, err := strconv.Atoi(r.PathValue("debtID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	debt, err := h.service.MakePayment(debtID, req.PaymentAmount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, debt)
}

func (h *DebtHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	debtID, err := strconv.Atoi(r.PathValue("debtID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid debt ID")
		return
	}

	if err := h.service.DeleteDebt(debtID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
