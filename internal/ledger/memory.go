package ledger

import (
	"sync"

	"github.com/example/shop-order-service/internal/domain"
)

// Memory is the in-process order ledger: a single FIFO sequence across
// all buyers. Any per-buyer view preserves relative insertion order.
type Memory struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewMemory() *Memory {
	return &Memory{}
}

func (l *Memory) Enqueue(o domain.Order) {
	l.mu.Lock()
	l.orders = append(l.orders, o)
	l.mu.Unlock()
}

func (l *Memory) PendingFor(buyer string) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []domain.Order
	for _, o := range l.orders {
		if o.Buyer == buyer {
			out = append(out, o)
		}
	}
	return out
}

func (l *Memory) OldestPending(buyer string) (domain.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.Buyer == buyer {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (l *Memory) Remove(id string) (domain.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, o := range l.orders {
		if o.ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return o, true
		}
	}
	return domain.Order{}, false
}

var _ domain.Ledger = (*Memory)(nil)
