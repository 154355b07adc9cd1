package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/example/shop-order-service/internal/domain"
)

// Checkout reserves stock and enqueues a pending order. A failed checkout
// never partially reserves: all inputs are validated before the single
// reserve step mutates the catalog.
type Checkout struct {
	Catalog domain.Catalog
	Ledger  domain.Ledger
	Store   domain.StateStore
	Events  domain.EventPublisher
}

type CheckoutInput struct {
	Buyer    string
	Shop     string
	Product  domain.ProductKey
	Quantity int
	Address  string
}

func (uc Checkout) Execute(ctx context.Context, in CheckoutInput) (domain.Order, error) {
	if strings.TrimSpace(in.Address) == "" {
		return domain.Order{}, domain.ErrValidation
	}
	rec, err := uc.Catalog.Reserve(in.Shop, in.Product, in.Quantity)
	if err != nil {
		return domain.Order{}, err
	}
	o := domain.Order{
		ID:        uuid.NewString(),
		Buyer:     in.Buyer,
		Shop:      in.Shop,
		Product:   in.Product,
		Quantity:  in.Quantity,
		UnitPrice: rec.Price,
		Total:     rec.Price.Times(in.Quantity),
		Address:   in.Address,
	}
	uc.Ledger.Enqueue(o)
	mirrorStock(ctx, uc.Store, in.Shop, in.Product, rec.Quantity, rec.Price)
	publish(ctx, uc.Events, domain.EventOrderPlaced, o)
	return o, nil
}
