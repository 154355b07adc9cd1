package usecase

import (
	"context"

	"github.com/example/shop-order-service/internal/domain"
)

// CancelOrder removes a pending order and returns its stock to the
// catalog. Removal is decided first: if the order is already gone the
// cancellation is a no-op, so stock is never restored twice.
type CancelOrder struct {
	Catalog domain.Catalog
	Ledger  domain.Ledger
	Store   domain.StateStore
	Events  domain.EventPublisher
}

func (uc CancelOrder) Execute(ctx context.Context, orderID string) (domain.Order, error) {
	o, ok := uc.Ledger.Remove(orderID)
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	rec := uc.Catalog.Restore(o.Shop, o.Product, o.Quantity, o.UnitPrice)
	mirrorStock(ctx, uc.Store, o.Shop, o.Product, rec.Quantity, rec.Price)
	publish(ctx, uc.Events, domain.EventOrderCancelled, o)
	return o, nil
}
