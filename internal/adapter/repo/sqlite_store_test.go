package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shop-order-service/internal/domain"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "shop_system.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStockRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	apple := domain.ProductKey{Name: "Apple", Description: "Fresh red apple"}

	require.NoError(t, s.SaveStock(ctx, "Foods", apple, 100, 1350))
	// saving again overwrites, it mirrors the full in-memory record
	require.NoError(t, s.SaveStock(ctx, "Foods", apple, 95, 1350))

	var rows []struct {
		shop  string
		key   domain.ProductKey
		qty   int
		price domain.Centavos
	}
	err := s.LoadStock(ctx, func(shop string, key domain.ProductKey, qty int, price domain.Centavos) error {
		rows = append(rows, struct {
			shop  string
			key   domain.ProductKey
			qty   int
			price domain.Centavos
		}{shop, key, qty, price})
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Foods", rows[0].shop)
	assert.Equal(t, apple, rows[0].key)
	assert.Equal(t, 95, rows[0].qty)
	assert.Equal(t, domain.Centavos(1350), rows[0].price)
}

func TestDeleteStock(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	pen := domain.ProductKey{Name: "Pen", Description: "Ballpoint pen"}

	require.NoError(t, s.SaveStock(ctx, "Goods", pen, 1, 1050))
	require.NoError(t, s.DeleteStock(ctx, "Goods", pen))
	// deleting again is harmless
	require.NoError(t, s.DeleteStock(ctx, "Goods", pen))

	count := 0
	err := s.LoadStock(ctx, func(string, domain.ProductKey, int, domain.Centavos) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSameNameDifferentDescription(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SaveStock(ctx, "Goods", domain.ProductKey{Name: "Soap", Description: "100g bar soap"}, 10, 6400))
	require.NoError(t, s.SaveStock(ctx, "Goods", domain.ProductKey{Name: "Soap", Description: "250g bar soap"}, 5, 9900))

	count := 0
	err := s.LoadStock(ctx, func(string, domain.ProductKey, int, domain.Centavos) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count, "descriptions are part of the identity")
}

func TestAccountRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SaveAccount(ctx, domain.Account{
		Username: "carol", Password: "xyz98765", Role: domain.RoleSeller, Shop: "Crafts",
	}))
	require.NoError(t, s.SaveAccount(ctx, domain.Account{
		Username: "alice", Password: "abc12345", Role: domain.RoleBuyer,
	}))

	got := map[string]domain.Account{}
	err := s.LoadAccounts(ctx, func(a domain.Account) error {
		got[a.Username] = a
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.RoleSeller, got["carol"].Role)
	assert.Equal(t, "Crafts", got["carol"].Shop)
	assert.Equal(t, "abc12345", got["alice"].Password)
}
