package usecase

import (
	"context"

	"github.com/example/shop-order-service/internal/domain"
)

// SignUp registers an account. A seller's shop name must be unused; the
// shop is created empty on success.
type SignUp struct {
	Accounts domain.Accounts
	Catalog  domain.Catalog
	Store    domain.StateStore
}

func (uc SignUp) Execute(ctx context.Context, a domain.Account) error {
	if err := domain.ValidatePassword(a.Password); err != nil {
		return err
	}
	if a.Role == domain.RoleSeller {
		for _, shop := range uc.Catalog.Shops() {
			if shop == a.Shop {
				return domain.ErrInvalidShopName
			}
		}
	}
	if err := uc.Accounts.Create(a); err != nil {
		return err
	}
	if a.Role == domain.RoleSeller {
		uc.Catalog.EnsureShop(a.Shop)
	}
	mirrorAccount(ctx, uc.Store, a)
	return nil
}

// LogIn authenticates an existing account.
type LogIn struct {
	Accounts domain.Accounts
}

func (uc LogIn) Execute(username, password string) (domain.Account, error) {
	return uc.Accounts.Authenticate(username, password)
}
