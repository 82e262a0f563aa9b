package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type AccountServiceInterface interface {
	GetAllAccounts() ([]domain.Account, error)
	GetAccountByID(accountID int) (*domain.Account, error)
	GetAccountsByUserID(userID int) ([]domain.Account, error)
	GetAccountByName(accountName string) (*domain.Account, error)
	CreateAccount(userID int, accountName string, accountBalance decimal.Decimal) (*domain.Account, error)
	UpdateAccount(accountID int, details domain.Account) (*domain.Account, error)
	DeleteAccount(accountID int) error
}

type AccountHandler struct {
	service     AccountServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewAccountHandler(
	service AccountServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *AccountHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response functions must not be nil")
	}
	return &AccountHandler{service: service, respondJSON: respondJSON}
}

type createAccountRequest struct {
	UserID  int             `json:"userId"`
	Name    string          `json:"accountName"`
	Balance decimal.Decimal `json:"accountBalance"`
}

func (h *AccountHandler) GetAllAccounts(w http.ResponseWriter, _ *http.Request) {
	accounts, err := h.service.GetAllAccounts()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(r.PathValue("accountID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.service.GetAccountByID(accountID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) GetAccountsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	accounts, err := h.service.GetAccountsByUserID(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccountByName(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetAccountByName(r.PathValue("accountName"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.CreateAccount(req.UserID, req.Name, req.Balance)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, account)
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(r.PathValue("accountID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(accountID, domain.Account{
		UserID:  req.UserID,
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(r.PathValue("accountID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	if err := h.service.DeleteAccount(accountID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
