package usecase

import (
	"context"

	"github.com/example/shop-order-service/internal/domain"
)

// DeliverOrder finalizes the buyer's oldest pending order in two phases.
// Dispatch removes the order from the ledger; that removal is final, a
// funds shortfall only retries the payment step. Settle takes the payment,
// computes change and prunes a sold-out catalog entry.
type DeliverOrder struct {
	Catalog domain.Catalog
	Ledger  domain.Ledger
	Store   domain.StateStore
	Events  domain.EventPublisher
}

// Dispatch pops the buyer's oldest pending order. The buyer does not get
// to choose which order ships.
func (uc DeliverOrder) Dispatch(ctx context.Context, buyer string) (domain.Order, error) {
	o, ok := uc.Ledger.OldestPending(buyer)
	if !ok {
		return domain.Order{}, domain.ErrNoOrders
	}
	if _, ok := uc.Ledger.Remove(o.ID); !ok {
		return domain.Order{}, domain.ErrNoOrders
	}
	return o, nil
}

// Settle accepts payment for a dispatched order. On ErrInsufficientFunds
// the caller re-prompts and calls Settle again with a new amount.
func (uc DeliverOrder) Settle(ctx context.Context, o domain.Order, payment domain.Centavos) (domain.Centavos, error) {
	if payment < o.Total {
		return 0, domain.ErrInsufficientFunds
	}
	change := payment - o.Total
	if uc.Catalog.PruneIfEmpty(o.Shop, o.Product) {
		mirrorDeleteStock(ctx, uc.Store, o.Shop, o.Product)
	}
	publish(ctx, uc.Events, domain.EventOrderDelivered, o)
	return change, nil
}
