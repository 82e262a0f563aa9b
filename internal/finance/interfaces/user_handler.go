package interfaces

import (
	"net/http"
	"strconv"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type UserServiceInterface interface {
	GetUserByID(userID int) (*domain.User, error)
}

type UserHandler struct {
	service     UserServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewUserHandler(
	service UserServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *UserHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response functions must not be nil")
	}
	return &UserHandler{service: service, respondJSON: respondJSON}
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("userID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}
