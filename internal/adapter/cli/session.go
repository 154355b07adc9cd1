package cli

import (
	"context"
	"strings"

	"github.com/example/shop-order-service/internal/domain"
)

func (a *App) signUpFlow(ctx context.Context) {
	var username string
	for {
		s, ok := a.ui.readLine("Enter a new username (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		if s == "" {
			a.ui.println("Username can't be empty. Try again.")
			continue
		}
		if _, exists := a.accounts.Get(s); exists {
			a.ui.println("Username already exists. Try again.")
			continue
		}
		username = s
		break
	}

	var password string
	for {
		s, ok := a.ui.readLine("Enter a password: ")
		if !ok {
			return
		}
		if err := domain.ValidatePassword(s); err != nil {
			a.ui.println("Password must be alphanumeric and between 8 to 16 characters.")
			a.ui.println("Please try again.")
			continue
		}
		password = s
		break
	}

	var role domain.Role
	for {
		s, ok := a.ui.readLine("Enter role (buyer/seller) (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		switch strings.ToLower(s) {
		case "buyer", "user":
			role = domain.RoleBuyer
		case "seller":
			role = domain.RoleSeller
		default:
			a.ui.println("Invalid role. Try again.")
			continue
		}
		break
	}

	var shop string
	if role == domain.RoleSeller {
		for {
			s, ok := a.ui.readLine("Enter your shop name (or type 'back' to go back): ")
			if !ok || isBack(s) {
				return
			}
			if s == "" || a.shopExists(s) {
				a.ui.println("Shop name is not available. Please choose a different shop name.")
				a.ui.println("Please try again.")
				continue
			}
			shop = s
			break
		}
	}

	acct := domain.Account{Username: username, Password: password, Role: role, Shop: shop}
	if err := a.signUp.Execute(ctx, acct); err != nil {
		a.ui.printf("Sign up failed: %v\n\n", err)
		return
	}
	a.ui.printf("Account created for %s as %s.\n\n", username, role)
}

func (a *App) logInFlow() *domain.Account {
	var username string
	for {
		s, ok := a.ui.readLine("Enter your username (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return nil
		}
		if _, exists := a.accounts.Get(s); !exists {
			a.ui.println("Username not found. Try again.")
			continue
		}
		username = s
		break
	}
	for {
		s, ok := a.ui.readLine("Enter your password (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return nil
		}
		acct, err := a.logIn.Execute(username, s)
		if err != nil {
			a.ui.println("Incorrect password. Try again.")
			continue
		}
		a.ui.printf("Welcome, %s.\n\n", username)
		return &acct
	}
}

func (a *App) shopExists(name string) bool {
	for _, s := range a.catalog.Shops() {
		if s == name {
			return true
		}
	}
	return false
}
