package usecase

import (
	"context"
	"fmt"

	"github.com/example/shop-order-service/internal/domain"
)

type stockRow struct {
	shop  string
	key   domain.ProductKey
	qty   int
	price domain.Centavos
}

// fakeStore records mirror calls and can simulate a failing backend.
type fakeStore struct {
	savedAccounts []domain.Account
	savedStock    []stockRow
	deletedStock  []stockRow
	failWrites    bool

	seedAccounts []domain.Account
	seedStock    []stockRow
}

func (s *fakeStore) SaveAccount(ctx context.Context, a domain.Account) error {
	if s.failWrites {
		return fmt.Errorf("store down")
	}
	s.savedAccounts = append(s.savedAccounts, a)
	return nil
}

func (s *fakeStore) SaveStock(ctx context.Context, shop string, key domain.ProductKey, qty int, price domain.Centavos) error {
	if s.failWrites {
		return fmt.Errorf("store down")
	}
	s.savedStock = append(s.savedStock, stockRow{shop: shop, key: key, qty: qty, price: price})
	return nil
}

func (s *fakeStore) DeleteStock(ctx context.Context, shop string, key domain.ProductKey) error {
	if s.failWrites {
		return fmt.Errorf("store down")
	}
	s.deletedStock = append(s.deletedStock, stockRow{shop: shop, key: key})
	return nil
}

func (s *fakeStore) LoadAccounts(ctx context.Context, fn func(a domain.Account) error) error {
	for _, a := range s.seedAccounts {
		if err := fn(a); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeStore) LoadStock(ctx context.Context, fn func(shop string, key domain.ProductKey, qty int, price domain.Centavos) error) error {
	for _, r := range s.seedStock {
		if err := fn(r.shop, r.key, r.qty, r.price); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.StateStore = (*fakeStore)(nil)

type fakeEvents struct {
	published []domain.OrderEvent
}

func (e *fakeEvents) Publish(ctx context.Context, ev domain.OrderEvent) error {
	e.published = append(e.published, ev)
	return nil
}

func (e *fakeEvents) types() []string {
	var out []string
	for _, ev := range e.published {
		out = append(out, ev.EventType)
	}
	return out
}

var _ domain.EventPublisher = (*fakeEvents)(nil)
