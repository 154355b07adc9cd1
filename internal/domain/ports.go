package domain

import "context"

// Catalog is the per-shop stock state. The order engine is the only
// mutator; display routines may read freely.
type Catalog interface {
	// EnsureShop registers a shop, keeping an existing inventory intact.
	EnsureShop(shop string)
	// Shops lists shop names in creation order.
	Shops() []string
	// Entries lists a shop's records in insertion order.
	Entries(shop string) []CatalogEntry
	Lookup(shop string, key ProductKey) (StockRecord, bool)
	// MatchName returns every entry whose product name matches exactly,
	// in insertion order. Callers must disambiguate between descriptions.
	MatchName(shop, name string) []CatalogEntry
	// AddOrRestock creates the record or increments its quantity. An
	// existing record keeps its original price.
	AddOrRestock(shop string, key ProductKey, qty int, price Centavos) (StockRecord, error)
	// Reserve deducts stock for a checkout. The check and the decrement
	// are a single step; on error nothing changes.
	Reserve(shop string, key ProductKey, qty int) (StockRecord, error)
	// Restore returns previously reserved stock. Upsert semantics: a
	// pruned entry is recreated from the order's own price.
	Restore(shop string, key ProductKey, qty int, price Centavos) StockRecord
	// PruneIfEmpty drops the record iff its quantity is zero.
	PruneIfEmpty(shop string, key ProductKey) bool
}

// Ledger holds pending orders across all buyers in insertion order.
type Ledger interface {
	Enqueue(o Order)
	// PendingFor filters by buyer, preserving ledger order.
	PendingFor(buyer string) []Order
	OldestPending(buyer string) (Order, bool)
	// Remove removes by order ID. Removing an absent order is a no-op
	// and reports false.
	Remove(id string) (Order, bool)
}

// Accounts is the session collaborator's registry.
type Accounts interface {
	Get(username string) (Account, bool)
	Create(a Account) error
	Authenticate(username, password string) (Account, error)
}

// StateStore mirrors catalog and account state into durable storage.
// Mirroring is best-effort: failures are logged by callers and do not
// roll back in-memory mutations.
type StateStore interface {
	SaveAccount(ctx context.Context, a Account) error
	SaveStock(ctx context.Context, shop string, key ProductKey, qty int, price Centavos) error
	DeleteStock(ctx context.Context, shop string, key ProductKey) error
	LoadAccounts(ctx context.Context, fn func(a Account) error) error
	LoadStock(ctx context.Context, fn func(shop string, key ProductKey, qty int, price Centavos) error) error
}

// EventPublisher emits order lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}
