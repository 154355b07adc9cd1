package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/example/shop-order-service/internal/domain"
	"github.com/example/shop-order-service/internal/usecase"
)

func (a *App) displayProducts() {
	shown := false
	for i, shop := range a.catalog.Shops() {
		var rows []domain.CatalogEntry
		for _, e := range a.catalog.Entries(shop) {
			if e.Record.Quantity > 0 {
				rows = append(rows, e)
			}
		}
		if len(rows) == 0 {
			continue
		}
		shown = true
		a.ui.printf("\n%d. Available Products at %s:\n", i+1, shop)
		a.printEntries(rows)
	}
	if !shown {
		a.ui.println("No products available.")
	}
	a.ui.println("")
}

func (a *App) selectShop() (string, bool) {
	shops := a.catalog.Shops()
	a.ui.println("\nAvailable Shops:")
	for i, s := range shops {
		a.ui.printf("%d. %s\n", i+1, s)
	}
	for {
		s, ok := a.ui.readLine("Select a shop by number (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return "", false
		}
		idx, err := strconv.Atoi(s)
		if err != nil {
			a.ui.println("Invalid input. Please enter a number.")
			continue
		}
		if idx < 1 || idx > len(shops) {
			a.ui.println("Invalid selection. Try again.")
			continue
		}
		shop := shops[idx-1]
		a.ui.printf("\nProducts available at %s:\n", shop)
		a.printEntries(a.catalog.Entries(shop))
		return shop, true
	}
}

func (a *App) checkoutFlow(ctx context.Context) {
	for {
		shop, ok := a.selectShop()
		if !ok {
			return
		}
	productLoop:
		for {
			name, ok := a.ui.readLine("Product (or type 'back' to go back): ")
			if !ok {
				return
			}
			if isBack(name) {
				break
			}
			matches := a.catalog.MatchName(shop, name)
			if len(matches) == 0 {
				a.ui.println("Product not available. Try again.")
				continue
			}
			entry := matches[0]
			if len(matches) > 1 {
				// same name under several descriptions: the buyer must
				// pick one explicitly, first match is never assumed
				a.ui.printf("Multiple descriptions found for %s:\n", name)
				for i, m := range matches {
					a.ui.printf("%d. %s\n", i+1, m.Key.Description)
				}
				for {
					s, ok := a.ui.readLine("Select the description number: ")
					if !ok {
						return
					}
					idx, err := strconv.Atoi(s)
					if err != nil || idx < 1 || idx > len(matches) {
						a.ui.println("Invalid selection. Try again.")
						continue
					}
					entry = matches[idx-1]
					break
				}
			}

			var qty int
			for {
				s, ok := a.ui.readLine("Quantity (or type 'back' to go back): ")
				if !ok {
					return
				}
				if isBack(s) {
					continue productLoop
				}
				n, err := strconv.Atoi(s)
				if err != nil || n <= 0 || n > entry.Record.Quantity {
					a.ui.println("Invalid quantity. Try again.")
					continue
				}
				qty = n
				break
			}

			addr, ok := a.ui.readLine("Address (or type 'back' to go back): ")
			if !ok {
				return
			}
			if isBack(addr) || addr == "" {
				continue
			}

			o, err := a.checkout.Execute(ctx, usecase.CheckoutInput{
				Buyer:    a.user.Username,
				Shop:     shop,
				Product:  entry.Key,
				Quantity: qty,
				Address:  addr,
			})
			if err != nil {
				a.ui.printf("Checkout failed: %v\n", err)
				continue
			}
			a.ui.printf("Order placed: %d x %s (%v each) from %s.\n\n", o.Quantity, o.Product.Name, o.UnitPrice, o.Shop)
			break
		}
	}
}

func (a *App) deliverFlow(ctx context.Context) {
	o, err := a.deliver.Dispatch(ctx, a.user.Username)
	if err != nil {
		a.ui.printf("No orders to deliver.\n\n")
		return
	}
	a.ui.printf("Delivering %s's order from %s at %s...\n", o.Buyer, o.Shop, o.Address)
	a.ui.printf("Total price: %v\n", o.Total)
	time.Sleep(a.pacing)
	a.ui.printf("Order Delivered: %d x %s (%v each) from %s.\n\n", o.Quantity, o.Product.Name, o.UnitPrice, o.Shop)

	for {
		s, ok := a.ui.readLine("Enter your money: ")
		if !ok {
			return
		}
		payment, err := domain.ParseCentavos(s)
		if err != nil {
			a.ui.println("Invalid input. Please enter a valid amount.")
			continue
		}
		change, err := a.deliver.Settle(ctx, o, payment)
		if errors.Is(err, domain.ErrInsufficientFunds) {
			a.ui.println("Insufficient funds. Please provide enough money.")
			continue
		}
		a.ui.printf("The order of %s from %s at %s has been delivered.\n\n", o.Buyer, o.Shop, o.Address)
		a.ui.printf("Change: %v\n\n", change)
		return
	}
}

func (a *App) cancelFlow(ctx context.Context) {
	orders := a.ledger.PendingFor(a.user.Username)
	if len(orders) == 0 {
		a.ui.printf("No orders to cancel.\n\n")
		return
	}
	a.ui.println("\nYour Orders:")
	for i, o := range orders {
		a.ui.printf("%d. %s (%d) from %s\n", i+1, o.Product.Name, o.Quantity, o.Shop)
	}
	for {
		s, ok := a.ui.readLine("Enter the number of the order you want to cancel (or 0 to go back): ")
		if !ok {
			return
		}
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 0 || idx > len(orders) {
			a.ui.println("Invalid choice. Please enter a valid number.")
			continue
		}
		if idx == 0 {
			return
		}
		o, err := a.cancel.Execute(ctx, orders[idx-1].ID)
		if err != nil {
			a.ui.printf("Cancel failed: %v\n\n", err)
			return
		}
		a.ui.printf("Order for %s (%d) from %s has been canceled.\n\n", o.Product.Name, o.Quantity, o.Shop)
		return
	}
}

func (a *App) displayOrders() {
	orders := a.ledger.PendingFor(a.user.Username)
	if len(orders) == 0 {
		a.ui.printf("No orders to display.\n\n")
		return
	}
	a.ui.printf("\nOrders for %s:\n", a.user.Username)
	a.ui.printf("%-20s %-20s %-20s %-10s %-10s\n", "Shop", "Product", "Description", "Quantity", "Total")
	for _, o := range orders {
		a.ui.printf("%-20s %-20s %-20s %-10d %-10v\n", o.Shop, o.Product.Name, o.Product.Description, o.Quantity, o.Total)
	}
	a.ui.println("")
}
