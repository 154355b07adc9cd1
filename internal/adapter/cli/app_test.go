package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/shop-order-service/internal/accounts"
	"github.com/example/shop-order-service/internal/catalog"
	"github.com/example/shop-order-service/internal/domain"
	"github.com/example/shop-order-service/internal/ledger"
)

type session struct {
	catalog *catalog.Memory
	ledger  *ledger.Memory
	acc     *accounts.Memory
	out     string
}

// runSession feeds scripted input through the full menu loop.
func runSession(t *testing.T, input ...string) *session {
	t.Helper()
	cat := catalog.NewMemory()
	if _, err := cat.AddOrRestock("Foods", domain.ProductKey{Name: "Apple", Description: "Fresh red apple"}, 100, 1350); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := cat.AddOrRestock("Goods", domain.ProductKey{Name: "Pen", Description: "Ballpoint pen"}, 1, 1050); err != nil {
		t.Fatalf("seed: %v", err)
	}
	led := ledger.NewMemory()
	acc := accounts.NewMemory()
	if err := acc.Create(domain.Account{Username: "alice", Password: "abc12345", Role: domain.RoleBuyer}); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	var out bytes.Buffer
	app := New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, acc, cat, led, nil, nil, 0)
	app.Run(context.Background())
	return &session{catalog: cat, ledger: led, acc: acc, out: out.String()}
}

func (s *session) assertOutput(t *testing.T, want string) {
	t.Helper()
	if !strings.Contains(s.out, want) {
		t.Errorf("output missing %q\n--- output ---\n%s", want, s.out)
	}
}

func TestCheckoutAndCancelSession(t *testing.T) {
	s := runSession(t,
		"2", "alice", "abc12345", // log in
		"4", "1", "Apple", "5", "X", "back", // checkout 5 apples from Foods
		"7",      // display orders
		"6", "1", // cancel the order
		"0",
	)

	s.assertOutput(t, "Welcome, alice.")
	s.assertOutput(t, "Order placed: 5 x Apple (₱13.50 each) from Foods.")
	s.assertOutput(t, "Orders for alice:")
	s.assertOutput(t, "Order for Apple (5) from Foods has been canceled.")

	rec, ok := s.catalog.Lookup("Foods", domain.ProductKey{Name: "Apple", Description: "Fresh red apple"})
	if !ok || rec.Quantity != 100 {
		t.Errorf("apple stock after cancel = %+v, want 100", rec)
	}
	if got := s.ledger.PendingFor("alice"); len(got) != 0 {
		t.Errorf("ledger not empty after cancel: %+v", got)
	}
}

func TestDeliverSessionRetriesPayment(t *testing.T) {
	s := runSession(t,
		"2", "alice", "abc12345",
		"4", "1", "Apple", "5", "X", "back",
		"5", "50", "100", // deliver: short payment, then enough
		"0",
	)

	s.assertOutput(t, "Total price: ₱67.50")
	s.assertOutput(t, "Insufficient funds. Please provide enough money.")
	s.assertOutput(t, "Change: ₱32.50")

	rec, ok := s.catalog.Lookup("Foods", domain.ProductKey{Name: "Apple", Description: "Fresh red apple"})
	if !ok || rec.Quantity != 95 {
		t.Errorf("apple stock after delivery = %+v, want 95", rec)
	}
}

func TestCheckoutRejectsExcessQuantity(t *testing.T) {
	s := runSession(t,
		"2", "alice", "abc12345",
		"4", "2", "Pen", "2", "back", "back", "back", // 2 pens from Goods with only 1 on hand
		"0",
	)

	s.assertOutput(t, "Invalid quantity. Try again.")
	rec, ok := s.catalog.Lookup("Goods", domain.ProductKey{Name: "Pen", Description: "Ballpoint pen"})
	if !ok || rec.Quantity != 1 {
		t.Errorf("pen stock = %+v, want 1", rec)
	}
	if got := s.ledger.PendingFor("alice"); len(got) != 0 {
		t.Errorf("ledger should be empty: %+v", got)
	}
}

func TestSellerSession(t *testing.T) {
	s := runSession(t,
		"1", "carol", "abc12345", "seller", "Crafts", // sign up
		"2", "carol", "abc12345", // log in
		"3", "Mug", "5", "Clay mug", "250.00", // add stock
		"4", // check inventory
		"0",
	)

	s.assertOutput(t, "Account created for carol as seller.")
	s.assertOutput(t, "Added 5 Mug(s) to the inventory of Crafts.")
	s.assertOutput(t, "Current Inventory of Crafts:")

	rec, ok := s.catalog.Lookup("Crafts", domain.ProductKey{Name: "Mug", Description: "Clay mug"})
	if !ok || rec.Quantity != 5 || rec.Price != 25000 {
		t.Errorf("mug stock = %+v, want qty 5 at ₱250.00", rec)
	}
}

func TestDisambiguationByDescription(t *testing.T) {
	// second Soap under a different description
	cat := catalog.NewMemory()
	if _, err := cat.AddOrRestock("Goods", domain.ProductKey{Name: "Soap", Description: "100g bar soap"}, 10, 6400); err != nil {
		t.Fatal(err)
	}
	if _, err := cat.AddOrRestock("Goods", domain.ProductKey{Name: "Soap", Description: "250g bar soap"}, 10, 9900); err != nil {
		t.Fatal(err)
	}
	led := ledger.NewMemory()
	acc := accounts.NewMemory()
	if err := acc.Create(domain.Account{Username: "alice", Password: "abc12345", Role: domain.RoleBuyer}); err != nil {
		t.Fatal(err)
	}

	input := strings.Join([]string{
		"2", "alice", "abc12345",
		"4", "1", "Soap", "2", "1", "X", "back", // pick the second description
		"0",
	}, "\n") + "\n"
	var out bytes.Buffer
	app := New(strings.NewReader(input), &out, acc, cat, led, nil, nil, 0)
	app.Run(context.Background())

	if !strings.Contains(out.String(), "Multiple descriptions found for Soap:") {
		t.Fatalf("expected disambiguation prompt, output:\n%s", out.String())
	}
	pending := led.PendingFor("alice")
	if len(pending) != 1 {
		t.Fatalf("pending = %+v, want one order", pending)
	}
	if pending[0].Product.Description != "250g bar soap" {
		t.Errorf("ordered description = %q, want the selected one", pending[0].Product.Description)
	}
	if pending[0].UnitPrice != 9900 {
		t.Errorf("unit price = %v, want ₱99.00", pending[0].UnitPrice)
	}
}

func TestBackSentinelsAbortWithoutSideEffects(t *testing.T) {
	s := runSession(t,
		"2", "alice", "abc12345",
		"4", "back", // abort checkout at shop selection
		"6", // nothing to cancel
		"5", // nothing to deliver
		"0",
	)

	s.assertOutput(t, "No orders to cancel.")
	s.assertOutput(t, "No orders to deliver.")
	rec, _ := s.catalog.Lookup("Foods", domain.ProductKey{Name: "Apple", Description: "Fresh red apple"})
	if rec.Quantity != 100 {
		t.Errorf("stock touched by aborted flows: %+v", rec)
	}
}
