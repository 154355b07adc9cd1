package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/shop-order-service/internal/domain"
)

func order(id, buyer string) domain.Order {
	return domain.Order{ID: id, Buyer: buyer, Shop: "Foods"}
}

func TestPendingForPreservesInsertionOrder(t *testing.T) {
	l := NewMemory()
	l.Enqueue(order("a1", "alice"))
	l.Enqueue(order("b1", "bob"))
	l.Enqueue(order("a2", "alice"))
	l.Enqueue(order("a3", "alice"))

	got := l.PendingFor("alice")
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
	assert.Equal(t, "a3", got[2].ID)
}

func TestOldestPending(t *testing.T) {
	l := NewMemory()
	_, ok := l.OldestPending("alice")
	assert.False(t, ok)

	l.Enqueue(order("b1", "bob"))
	l.Enqueue(order("a1", "alice"))
	l.Enqueue(order("a2", "alice"))

	o, ok := l.OldestPending("alice")
	require.True(t, ok)
	assert.Equal(t, "a1", o.ID)
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := NewMemory()
	l.Enqueue(order("a1", "alice"))

	o, ok := l.Remove("a1")
	require.True(t, ok)
	assert.Equal(t, "a1", o.ID)

	_, ok = l.Remove("a1")
	assert.False(t, ok, "removing a removed order is a no-op")
	_, ok = l.Remove("nope")
	assert.False(t, ok)
}

func TestBuyerIsolation(t *testing.T) {
	l := NewMemory()
	l.Enqueue(order("a1", "alice"))
	l.Enqueue(order("b1", "bob"))
	l.Enqueue(order("a2", "alice"))

	before := l.PendingFor("alice")
	_, ok := l.Remove("b1")
	require.True(t, ok)
	after := l.PendingFor("alice")
	assert.Equal(t, before, after, "another buyer's removal must not affect the view")
}

func TestRemoveMiddleKeepsOrder(t *testing.T) {
	l := NewMemory()
	for i := 1; i <= 4; i++ {
		l.Enqueue(order(fmt.Sprintf("a%d", i), "alice"))
	}
	_, ok := l.Remove("a2")
	require.True(t, ok)

	got := l.PendingFor("alice")
	require.Len(t, got, 3)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a3", got[1].ID)
	assert.Equal(t, "a4", got[2].ID)
}
