package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/example/shop-order-service/internal/domain"
	"github.com/example/shop-order-service/internal/usecase"
)

// App drives the interactive session: menus, prompts and the
// catch-and-reprompt loops around the order engine.
type App struct {
	ui       *ui
	accounts domain.Accounts
	catalog  domain.Catalog
	ledger   domain.Ledger
	signUp   usecase.SignUp
	logIn    usecase.LogIn
	addStock usecase.AddStock
	checkout usecase.Checkout
	cancel   usecase.CancelOrder
	deliver  usecase.DeliverOrder
	pacing   time.Duration
	user     *domain.Account
}

func New(in io.Reader, out io.Writer, acc domain.Accounts, cat domain.Catalog, led domain.Ledger,
	store domain.StateStore, events domain.EventPublisher, pacing time.Duration) *App {
	return &App{
		ui:       newUI(in, out),
		accounts: acc,
		catalog:  cat,
		ledger:   led,
		signUp:   usecase.SignUp{Accounts: acc, Catalog: cat, Store: store},
		logIn:    usecase.LogIn{Accounts: acc},
		addStock: usecase.AddStock{Catalog: cat, Store: store},
		checkout: usecase.Checkout{Catalog: cat, Ledger: led, Store: store, Events: events},
		cancel:   usecase.CancelOrder{Catalog: cat, Ledger: led, Store: store, Events: events},
		deliver:  usecase.DeliverOrder{Catalog: cat, Ledger: led, Store: store, Events: events},
		pacing:   pacing,
	}
}

// Run loops over the menu until the user exits, input ends or the
// context is cancelled.
func (a *App) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if a.user == nil {
			if !a.loggedOutMenu(ctx) {
				return
			}
		} else if !a.loggedInMenu(ctx) {
			return
		}
	}
}

func (a *App) loggedOutMenu(ctx context.Context) bool {
	a.ui.println("--Welcome to the Shop and Inventory Management System--")
	a.ui.println("1. Sign up")
	a.ui.println("2. Log in")
	a.ui.println("0. Exit")
	choice, ok := a.ui.readLine("Choose an option: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		a.signUpFlow(ctx)
	case "2":
		a.user = a.logInFlow()
	case "0":
		return false
	default:
		a.ui.printf("Invalid option. Please try again.\n\n")
	}
	return true
}

func (a *App) loggedInMenu(ctx context.Context) bool {
	a.ui.printf("Logged in as: %s\n", a.user.Username)
	a.ui.println("1. Log out")
	a.ui.println("2. Switch account")
	if a.user.Role == domain.RoleBuyer {
		a.ui.println("3. Display available products")
		a.ui.println("4. Check out order")
		a.ui.println("5. Deliver order")
		a.ui.println("6. Cancel order")
		a.ui.println("7. Display orders")
	} else {
		a.ui.println("3. Add stock")
		a.ui.println("4. Check inventory")
	}
	a.ui.println("0. Exit")
	choice, ok := a.ui.readLine("Choose an option: ")
	if !ok {
		return false
	}
	switch choice {
	case "1":
		a.ui.printf("You have been logged out.\n\n")
		a.user = nil
	case "2":
		a.user = a.logInFlow()
	case "0":
		return false
	default:
		if a.user.Role == domain.RoleBuyer {
			a.buyerChoice(ctx, choice)
		} else {
			a.sellerChoice(ctx, choice)
		}
	}
	return true
}

func (a *App) buyerChoice(ctx context.Context, choice string) {
	switch choice {
	case "3":
		a.displayProducts()
	case "4":
		a.checkoutFlow(ctx)
	case "5":
		a.deliverFlow(ctx)
	case "6":
		a.cancelFlow(ctx)
	case "7":
		a.displayOrders()
	default:
		a.ui.printf("Invalid option. Please try again.\n\n")
	}
}

func (a *App) sellerChoice(ctx context.Context, choice string) {
	switch choice {
	case "3":
		a.addStockFlow(ctx)
	case "4":
		a.checkInventory()
	default:
		a.ui.printf("Invalid option. Please try again.\n\n")
	}
}

func (a *App) printEntries(entries []domain.CatalogEntry) {
	a.ui.printf("%-20s %-20s %-10s %-10s\n", "Product", "Description", "Quantity", "Price")
	a.ui.println(strings.Repeat("-", 70))
	for _, e := range entries {
		a.ui.printf("%-20s %-20s %-10d %-10v\n", e.Key.Name, e.Key.Description, e.Record.Quantity, e.Record.Price)
	}
}
