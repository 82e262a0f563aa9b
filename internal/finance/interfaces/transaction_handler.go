package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/application"
	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(input application.CreateTransactionInput) (*application.TransactionResponse, error)
	GetAllTransactions() ([]domain.Transaction, error)
	GetTransactionByID(transactionID int) (*domain.Transaction, error)
	GetTransactionsByAccountID(accountID int) ([]domain.Transaction, error)
	GetTransactionsByCategoryID(categoryID int) ([]domain.Transaction, error)
	GetTransactionsByDebtID(debtID int) ([]domain.Transaction, error)
	GetTransactionsByUserID(userID int) ([]domain.Transaction, error)
	GetTransactionsByDate(date domain.Date) ([]domain.Transaction, error)
	GetTransactionsByType(transactionType string) ([]domain.Transaction, error)
	GetTransactionsByRecurrence(recurrence string) ([]domain.Transaction, error)
	UpdateTransaction(transactionID int, input application.UpdateTransactionInput) (*domain.Transaction, error)
	DeleteTransaction(transactionID int) error
}

type TransactionHandler struct {
	service     TransactionServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *TransactionHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{service: service, respondJSON: respondJSON}
}

// transactionRequest covers create and update. transactionDate is ignored on
// create; the recorder stamps it server-side.
type transactionRequest struct {
	AccountID       int             `json:"accountId"`
	UserID          int             `json:"userId"`
	CategoryID      int             `json:"categoryId"`
	DebtID          *int            `json:"debtId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	Recurrence      string          `json:"recurrence"`
	TransactionDate domain.Date     `json:"transactionDate"`
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.service.CreateTransaction(application.CreateTransactionInput{
		AccountID:   req.AccountID,
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
		DebtID:      req.DebtID,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, response)
}

func (h *TransactionHandler) GetAllTransactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("transactionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransactionByID(transactionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) GetTransactionsByAccountID(w http.ResponseWriter, r *http.Request) {
	h.listByIntPath(w, r, "accountID", h.service.GetTransactionsByAccountID, "Invalid account ID")
}

func (h *TransactionHandler) GetTransactionsByCategoryID(w http.ResponseWriter, r *http.Request) {
	h.listByIntPath(w, r, "categoryID", h.service.GetTransactionsByCategoryID, "Invalid category ID")
}

func (h *TransactionHandler) GetTransactionsByDebtID(w http.ResponseWriter, r *http.Request) {
	h.listByIntPath(w, r, "debtID", h.service.GetTransactionsByDebtID, "Invalid debt ID")
}

func (h *TransactionHandler) GetTransactionsByUserID(w http.ResponseWriter, r *http.Request) {
	h.listByIntPath(w, r, "userID", h.service.GetTransactionsByUserID, "Invalid user ID")
}

func (h *TransactionHandler) listByIntPath(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	list func(int) ([]domain.Transaction, error),
	invalidMessage string,
) {
	id, err := strconv.Atoi(r.PathValue(param))
	if err != nil {
		respondError(w, http.StatusBadRequest, invalidMessage)
		return
	}

	transactions, err := list(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransactionsByDate(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(r.PathValue("transactionDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	transactions, err := h.service.GetTransactionsByDate(date)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransactionsByType(w http.ResponseWriter, r *http.Request) {
	transactionType := r.PathValue("type")
	if !domain.IsValidTransactionType(transactionType) {
		respondError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}

	transactions, err := h.service.GetTransactionsByType(transactionType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) GetTransactionsByRecurrence(w http.ResponseWriter, r *http.Request) {
	recurrence := r.PathValue("recurrence")
	if !domain.IsValidRecurrence(recurrence) {
		respondError(w, http.StatusBadRequest, "Invalid recurrence")
		return
	}

	transactions, err := h.service.GetTransactionsByRecurrence(recurrence)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("transactionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(transactionID, application.UpdateTransactionInput{
		AccountID:       req.AccountID,
		UserID:          req.UserID,
		CategoryID:      req.CategoryID,
		DebtID:          req.DebtID,
		Amount:          req.Amount,
		Description:     req.Description,
		Type:            req.Type,
		Recurrence:      req.Recurrence,
		TransactionDate: req.TransactionDate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(r.PathValue("transactionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(transactionID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
