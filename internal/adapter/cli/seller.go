package cli

import (
	"context"
	"strconv"

	"github.com/example/shop-order-service/internal/domain"
)

func (a *App) addStockFlow(ctx context.Context) {
	shop := a.user.Shop
	var name string
	for {
		s, ok := a.ui.readLine("Enter product name (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		if s == "" {
			a.ui.println("Product name can't be empty. Try again.")
			continue
		}
		name = s
		break
	}

	var qty int
	for {
		s, ok := a.ui.readLine("Enter quantity (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			a.ui.println("Invalid quantity. Try again.")
			continue
		}
		qty = n
		break
	}

	var desc string
	for {
		s, ok := a.ui.readLine("Enter product description (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		if s == "" {
			a.ui.println("Product description can't be empty. Try again.")
			continue
		}
		desc = s
		break
	}

	var price domain.Centavos
	for {
		s, ok := a.ui.readLine("Enter product price (or type 'back' to go back): ")
		if !ok || isBack(s) {
			return
		}
		p, err := domain.ParseCentavos(s)
		if err != nil || p < 0 {
			a.ui.println("Invalid price. Try again.")
			continue
		}
		price = p
		break
	}

	key := domain.ProductKey{Name: name, Description: desc}
	if _, err := a.addStock.Execute(ctx, shop, key, qty, price); err != nil {
		a.ui.printf("Add stock failed: %v\n\n", err)
		return
	}
	a.ui.printf("Added %d %s(s) to the inventory of %s.\n\n", qty, name, shop)
}

func (a *App) checkInventory() {
	entries := a.catalog.Entries(a.user.Shop)
	if len(entries) == 0 {
		a.ui.printf("Inventory is empty.\n\n")
		return
	}
	a.ui.printf("\nCurrent Inventory of %s:\n", a.user.Shop)
	a.printEntries(entries)
	a.ui.println("")
}
