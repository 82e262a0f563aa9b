package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzyx/finances-tracker/internal/finance/domain"
)

func TestCreateCategory_Returns201(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"categoryName":"Utilities"}`))
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var category domain.Category
	require.NoError(t, json.NewDecoder(res.Body).Decode(&category))
	assert.Equal(t, "Utilities", category.Name)
}

func TestCreateCategory_DuplicateNameReturns409(t *testing.T) {
	service := &MockCategoryService{categories: []domain.Category{{ID: 1, Name: "Groceries"}}}
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"categoryName":"Groceries"}`))
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(service, respondJSON)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "A category with the name 'Groceries' already exists.", response["message"])
}

func TestGetCategoryByName_UnknownReturns404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories/name/Utilities", nil)
	req.SetPathValue("categoryName", "Utilities")
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON)
	handler.GetCategoryByName(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestGetAllCategories_UnexpectedErrorReturns500(t *testing.T) {
	service := &MockCategoryService{err: errors.New("connection refused")}
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(service, respondJSON)
	handler.GetAllCategories(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Internal server error", response["message"])
}
