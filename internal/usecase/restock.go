package usecase

import (
	"context"

	"github.com/example/shop-order-service/internal/domain"
)

// AddStock creates or restocks a catalog entry in the seller's shop and
// mirrors the new quantity to the store.
type AddStock struct {
	Catalog domain.Catalog
	Store   domain.StateStore
}

func (uc AddStock) Execute(ctx context.Context, shop string, key domain.ProductKey, qty int, price domain.Centavos) (domain.StockRecord, error) {
	rec, err := uc.Catalog.AddOrRestock(shop, key, qty, price)
	if err != nil {
		return domain.StockRecord{}, err
	}
	mirrorStock(ctx, uc.Store, shop, key, rec.Quantity, rec.Price)
	return rec, nil
}
