package interfaces

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	GetAllCategories() ([]domain.Category, error)
	GetCategoryByID(categoryID int) (*domain.Category, error)
	GetCategoryByName(categoryName string) (*domain.Category, error)
	CreateCategory(categoryName string) (*domain.Category, error)
	UpdateCategory(categoryID int, categoryName string) (*domain.Category, error)
	DeleteCategory(categoryID int) error
}

type CategoryHandler struct {
	service     CategoryServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *CategoryHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{service: service, respondJSON: respondJSON}
}

type categoryRequest struct {
	Name string `json:"categoryName"`
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) GetCategoryByName(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByName(r.PathValue("categoryName"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("categoryID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
