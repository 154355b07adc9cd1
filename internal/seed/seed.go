package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/shop-order-service/internal/domain"
	"github.com/example/shop-order-service/internal/usecase"
)

// Shop is one seeded shop with its starting stock.
type Shop struct {
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

type Product struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
	Price       string `yaml:"price"`
}

type file struct {
	Shops []Shop `yaml:"shops"`
}

// Load reads a YAML seed catalog.
func Load(path string) ([]Shop, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return f.Shops, nil
}

// Apply creates any missing seed shops and records. Entries already in
// the catalog (for instance loaded from the store) are left untouched.
func Apply(ctx context.Context, shops []Shop, add usecase.AddStock, cat domain.Catalog) error {
	for _, s := range shops {
		cat.EnsureShop(s.Name)
		for _, p := range s.Products {
			key := domain.ProductKey{Name: p.Name, Description: p.Description}
			if _, ok := cat.Lookup(s.Name, key); ok {
				continue
			}
			price, err := domain.ParseCentavos(p.Price)
			if err != nil {
				return fmt.Errorf("seed %s/%s: %w", s.Name, p.Name, err)
			}
			if _, err := add.Execute(ctx, s.Name, key, p.Quantity, price); err != nil {
				return fmt.Errorf("seed %s/%s: %w", s.Name, p.Name, err)
			}
		}
	}
	return nil
}

// Default is the built-in starting catalog.
func Default() []Shop {
	return []Shop{
		{Name: "Foods", Products: []Product{
			{Name: "Apple", Description: "Fresh red apple", Quantity: 100, Price: "13.50"},
			{Name: "Banana", Description: "Yellow banana", Quantity: 150, Price: "14.50"},
			{Name: "Orange", Description: "Juicy orange", Quantity: 120, Price: "18.75"},
			{Name: "Bread", Description: "Whole wheat bread", Quantity: 80, Price: "105.00"},
			{Name: "Milk", Description: "1L fresh milk", Quantity: 60, Price: "120.20"},
			{Name: "Eggs", Description: "Dozen eggs", Quantity: 90, Price: "120.50"},
			{Name: "Chicken", Description: "1kg chicken breast", Quantity: 50, Price: "336.00"},
			{Name: "Rice", Description: "1kg white rice", Quantity: 200, Price: "60.00"},
			{Name: "Carrot", Description: "Fresh carrots", Quantity: 100, Price: "36.80"},
			{Name: "Potato", Description: "Brown potatoes", Quantity: 120, Price: "45.90"},
		}},
		{Name: "Goods", Products: []Product{
			{Name: "Shampoo", Description: "500ml bottle", Quantity: 100, Price: "160.50"},
			{Name: "Soap", Description: "100g bar soap", Quantity: 200, Price: "64.00"},
			{Name: "Toothpaste", Description: "200g tube", Quantity: 150, Price: "69.50"},
			{Name: "Notebook", Description: "200-page notebook", Quantity: 80, Price: "47.75"},
			{Name: "Pen", Description: "Ballpoint pen", Quantity: 200, Price: "10.50"},
			{Name: "T-shirt", Description: "Cotton T-shirt", Quantity: 100, Price: "200.00"},
			{Name: "Detergent", Description: "1kg detergent powder", Quantity: 90, Price: "215.00"},
			{Name: "Coffee", Description: "200g instant coffee", Quantity: 60, Price: "70.00"},
			{Name: "Tea", Description: "100g black tea", Quantity: 70, Price: "80.50"},
			{Name: "Sugar", Description: "1kg white sugar", Quantity: 150, Price: "136.50"},
		}},
	}
}
