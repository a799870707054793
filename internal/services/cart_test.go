package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dukastore/internal/domain"
	"dukastore/internal/services"
)

func TestCartAddIncrements(t *testing.T) {
	records := memRecords(t)
	cart, err := services.NewCartService(records)
	require.NoError(t, err)

	require.NoError(t, cart.Add(1, 1))
	require.NoError(t, cart.Add(1, 2))
	require.NoError(t, cart.Add(2, 1))

	lines := cart.Lines()
	require.Equal(t, []domain.CartLine{{ProductID: 1, Qty: 3}, {ProductID: 2, Qty: 1}}, lines)
	require.Equal(t, 4, cart.Count())
}

func TestCartChangeQtyRemovesAtZero(t *testing.T) {
	records := memRecords(t)
	cart, err := services.NewCartService(records)
	require.NoError(t, err)

	require.NoError(t, cart.Add(1, 2))
	require.NoError(t, cart.ChangeQty(1, -1))
	require.Equal(t, []domain.CartLine{{ProductID: 1, Qty: 1}}, cart.Lines())

	require.NoError(t, cart.ChangeQty(1, -1))
	require.Empty(t, cart.Lines())

	// Huge negative deltas are idempotent: the line stays absent, no error.
	require.NoError(t, cart.ChangeQty(1, -1000))
	require.NoError(t, cart.ChangeQty(1, -1000))
	require.Empty(t, cart.Lines())
}

func TestCartRemove(t *testing.T) {
	records := memRecords(t)
	cart, err := services.NewCartService(records)
	require.NoError(t, err)

	require.NoError(t, cart.Add(1, 1))
	require.NoError(t, cart.Remove(1))
	require.Empty(t, cart.Lines())
	require.NoError(t, cart.Remove(1)) // absent id is fine
}

func TestCartTotalSkipsDanglingLines(t *testing.T) {
	records := memRecords(t)
	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)
	cart, err := services.NewCartService(records)
	require.NoError(t, err)

	require.NoError(t, cart.Add(1, 2)) // Phone, 15000
	require.NoError(t, cart.Add(3, 1)) // Headphones, 3000
	require.Equal(t, 33000.0, cart.Total(cat))

	// Deleting the product leaves the line dangling; it is excluded from
	// the total but not erased.
	require.NoError(t, cat.Delete(3))
	require.Equal(t, 30000.0, cart.Total(cat))
	require.Len(t, cart.Lines(), 2)
}

func TestCartPersistsAcrossReload(t *testing.T) {
	records := memRecords(t)
	cart, err := services.NewCartService(records)
	require.NoError(t, err)
	require.NoError(t, cart.Add(1, 2))

	cart2, err := services.NewCartService(records)
	require.NoError(t, err)
	require.Equal(t, cart.Lines(), cart2.Lines())
}
