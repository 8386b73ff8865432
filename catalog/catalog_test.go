package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An id that is not a valid identifier cannot match any document, so
// these branches resolve before touching the pool.

func TestGetCategoryUnparseableIDIsNotFound(t *testing.T) {
	store := NewStore(nil)
	_, err := store.GetCategory(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProductUnparseableIDIsNotFound(t *testing.T) {
	store := NewStore(nil)
	_, err := store.GetProduct(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsUnparseableCategoryIDIsEmpty(t *testing.T) {
	store := NewStore(nil)
	products, err := store.ListProducts(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
