package usecase

import (
	"context"
	"log"

	"github.com/example/shop-order-service/internal/domain"
)

// LoadState restores accounts and inventories from the store at startup.
type LoadState struct {
	Accounts domain.Accounts
	Catalog  domain.Catalog
	Store    domain.StateStore
}

func (uc LoadState) Execute(ctx context.Context) error {
	if uc.Store == nil {
		return nil
	}
	err := uc.Store.LoadAccounts(ctx, func(a domain.Account) error {
		if err := uc.Accounts.Create(a); err != nil {
			// skip duplicates without aborting the full load
			log.Printf("load account %s: %v", a.Username, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return uc.Store.LoadStock(ctx, func(shop string, key domain.ProductKey, qty int, price domain.Centavos) error {
		if _, err := uc.Catalog.AddOrRestock(shop, key, qty, price); err != nil {
			log.Printf("load stock %s/%s: %v", shop, key.Name, err)
		}
		return nil
	})
}
