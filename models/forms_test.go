package models

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindForm(t *testing.T, values url.Values, form any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.ShouldBind(form)
}

func TestCategoryFormBindsZeroSortOrder(t *testing.T) {
	// Sort keys are author-supplied with no floor; 0 is a valid value and
	// must not trip required-field validation.
	var form CategoryForm
	err := bindForm(t, url.Values{
		"name_es": {"Entradas"},
		"name_en": {"Starters"},
		"order":   {"0"},
	}, &form)
	require.NoError(t, err)
	assert.Equal(t, 0, form.SortOrder)
}

func TestCategoryFormRequiresNames(t *testing.T) {
	var form CategoryForm
	err := bindForm(t, url.Values{
		"name_es": {"Entradas"},
		"order":   {"1"},
	}, &form)
	assert.Error(t, err)
}

func TestProductFormBindsZeroSortOrder(t *testing.T) {
	var form ProductForm
	err := bindForm(t, url.Values{
		"category_id": {"018d6cc9-94b0-450f-8ce3-a7892c1752c7"},
		"name_es":     {"Tortilla"},
		"name_en":     {"Omelette"},
		"price":       {"9.5"},
		"order":       {"0"},
	}, &form)
	require.NoError(t, err)
	assert.Equal(t, 0, form.SortOrder)
}

func TestProductFormUnavailableBindsFalse(t *testing.T) {
	var form ProductForm
	err := bindForm(t, url.Values{
		"category_id": {"018d6cc9-94b0-450f-8ce3-a7892c1752c7"},
		"name_es":     {"Tortilla"},
		"name_en":     {"Omelette"},
		"price":       {"9.5"},
		"order":       {"1"},
		"available":   {"false"},
	}, &form)
	require.NoError(t, err)
	assert.False(t, form.Available)
	assert.False(t, form.Document("").Available)
}
