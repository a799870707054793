package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dukastore/internal/domain"
	"dukastore/internal/repos"
	"dukastore/internal/services"
)

func memRecords(t *testing.T) *repos.RecordRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	return repos.NewRecordRepo(db)
}

func TestCatalogAddValidation(t *testing.T) {
	records := memRecords(t)
	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)

	var ve *domain.ValidationError
	_, err = cat.Add("   ", 100)
	require.ErrorAs(t, err, &ve)
	_, err = cat.Add("Radio", 0)
	require.ErrorAs(t, err, &ve)
	_, err = cat.Add("Radio", -5)
	require.ErrorAs(t, err, &ve)

	p, err := cat.Add("Radio", 2500)
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	require.NotNil(t, p.Reviews)

	// Ids never collide with seeded or prior products.
	p2, err := cat.Add("Radio Deluxe", 3500)
	require.NoError(t, err)
	require.Greater(t, p2.ID, p.ID)
}

func TestCatalogSearch(t *testing.T) {
	records := memRecords(t)
	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)

	// "pho" is a substring of both "Phone" and "Headphones".
	names := func(products []domain.Product) []string {
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.Name)
		}
		return out
	}
	require.ElementsMatch(t, []string{"Phone", "Headphones"}, names(cat.Search("pho")))

	require.Len(t, cat.Search(""), 3)
	require.Empty(t, cat.Search("zzz"))

	// Against a Phone/Laptop-only catalog the match is unique.
	require.NoError(t, cat.Delete(3))
	require.Equal(t, []string{"Phone"}, names(cat.Search("pho")))
}

func TestCatalogAddReview(t *testing.T) {
	records := memRecords(t)
	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)

	var nfe *domain.NotFoundError
	require.ErrorAs(t, cat.AddReview(999, "alice", "great", 5), &nfe)

	var ve *domain.ValidationError
	require.ErrorAs(t, cat.AddReview(1, "alice", "  ", 5), &ve)
	require.ErrorAs(t, cat.AddReview(1, "alice", "great", 0), &ve)
	require.ErrorAs(t, cat.AddReview(1, "alice", "great", 6), &ve)

	require.NoError(t, cat.AddReview(1, "alice", "great phone", 5))
	p, ok := cat.Get(1)
	require.True(t, ok)
	require.Len(t, p.Reviews, 1)
	require.Equal(t, "alice", p.Reviews[0].Username)

	// Reviews survive a reload from the same records.
	cat2, err := services.NewCatalogService(records)
	require.NoError(t, err)
	p, ok = cat2.Get(1)
	require.True(t, ok)
	require.Len(t, p.Reviews, 1)
}

func TestCatalogReviewsBackfill(t *testing.T) {
	records := memRecords(t)

	// Simulate pre-existing data persisted without a reviews field.
	legacy := []map[string]any{
		{"id": 9, "name": "Radio", "price": 2000},
	}
	b, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, records.Put(repos.RecProducts, b))

	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)
	p, ok := cat.Get(9)
	require.True(t, ok)
	require.NotNil(t, p.Reviews)

	// The backfill re-persists, so the record now carries the field.
	raw, ok, err := records.Get(repos.RecProducts)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []domain.Product
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted, 1)
	require.NotNil(t, persisted[0].Reviews)
}

func TestCatalogDeleteIsSilentOnUnknown(t *testing.T) {
	records := memRecords(t)
	cat, err := services.NewCatalogService(records)
	require.NoError(t, err)

	require.NoError(t, cat.Delete(12345))
	require.Len(t, cat.All(), 3)

	require.NoError(t, cat.Delete(2))
	require.Len(t, cat.All(), 2)
	_, ok := cat.Get(2)
	require.False(t, ok)
}
