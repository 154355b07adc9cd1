package catalog

import (
	"sync"

	"github.com/example/shop-order-service/internal/domain"
)

// Memory is the in-process catalog: shop name -> product key -> stock
// record, with insertion order preserved for listings.
type Memory struct {
	mu    sync.RWMutex
	names []string
	shops map[string]*shopInventory
}

type shopInventory struct {
	keys    []domain.ProductKey
	records map[domain.ProductKey]domain.StockRecord
}

func NewMemory() *Memory {
	return &Memory{shops: make(map[string]*shopInventory)}
}

func (c *Memory) EnsureShop(shop string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureShopLocked(shop)
}

func (c *Memory) ensureShopLocked(shop string) *shopInventory {
	if inv, ok := c.shops[shop]; ok {
		return inv
	}
	inv := &shopInventory{records: make(map[domain.ProductKey]domain.StockRecord)}
	c.shops[shop] = inv
	c.names = append(c.names, shop)
	return inv
}

func (c *Memory) Shops() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Memory) Entries(shop string) []domain.CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inv, ok := c.shops[shop]
	if !ok {
		return nil
	}
	out := make([]domain.CatalogEntry, 0, len(inv.keys))
	for _, k := range inv.keys {
		out = append(out, domain.CatalogEntry{Key: k, Record: inv.records[k]})
	}
	return out
}

func (c *Memory) Lookup(shop string, key domain.ProductKey) (domain.StockRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inv, ok := c.shops[shop]
	if !ok {
		return domain.StockRecord{}, false
	}
	rec, ok := inv.records[key]
	return rec, ok
}

func (c *Memory) MatchName(shop, name string) []domain.CatalogEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inv, ok := c.shops[shop]
	if !ok {
		return nil
	}
	var out []domain.CatalogEntry
	for _, k := range inv.keys {
		if k.Name == name {
			out = append(out, domain.CatalogEntry{Key: k, Record: inv.records[k]})
		}
	}
	return out
}

func (c *Memory) AddOrRestock(shop string, key domain.ProductKey, qty int, price domain.Centavos) (domain.StockRecord, error) {
	if qty < 0 {
		return domain.StockRecord{}, domain.ErrInvalidQuantity
	}
	if price < 0 {
		return domain.StockRecord{}, domain.ErrInvalidPrice
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	inv := c.ensureShopLocked(shop)
	rec, ok := inv.records[key]
	if !ok {
		rec = domain.StockRecord{Price: price}
		inv.keys = append(inv.keys, key)
	}
	// an existing record keeps its original price
	rec.Quantity += qty
	inv.records[key] = rec
	return rec, nil
}

func (c *Memory) Reserve(shop string, key domain.ProductKey, qty int) (domain.StockRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inv, ok := c.shops[shop]
	if !ok {
		return domain.StockRecord{}, domain.ErrNotFound
	}
	rec, ok := inv.records[key]
	if !ok {
		return domain.StockRecord{}, domain.ErrNotFound
	}
	if qty <= 0 {
		return domain.StockRecord{}, domain.ErrInvalidQuantity
	}
	if qty > rec.Quantity {
		return domain.StockRecord{}, domain.ErrInsufficientStock
	}
	rec.Quantity -= qty
	inv.records[key] = rec
	return rec, nil
}

func (c *Memory) Restore(shop string, key domain.ProductKey, qty int, price domain.Centavos) domain.StockRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	inv := c.ensureShopLocked(shop)
	rec, ok := inv.records[key]
	if !ok {
		// the entry was pruned by a delivery in between; the order itself
		// is authoritative for price, so recreate it
		rec = domain.StockRecord{Price: price}
		inv.keys = append(inv.keys, key)
	}
	rec.Quantity += qty
	inv.records[key] = rec
	return rec
}

func (c *Memory) PruneIfEmpty(shop string, key domain.ProductKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	inv, ok := c.shops[shop]
	if !ok {
		return false
	}
	rec, ok := inv.records[key]
	if !ok || rec.Quantity != 0 {
		return false
	}
	delete(inv.records, key)
	for i, k := range inv.keys {
		if k == key {
			inv.keys = append(inv.keys[:i], inv.keys[i+1:]...)
			break
		}
	}
	return true
}

var _ domain.Catalog = (*Memory)(nil)
