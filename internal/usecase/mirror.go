package usecase

import (
	"context"
	"log"

	"github.com/example/shop-order-service/internal/domain"
)

// Persistence mirroring and event publishing are best-effort side effects:
// failures are logged and never roll back the in-memory state.

func mirrorStock(ctx context.Context, store domain.StateStore, shop string, key domain.ProductKey, qty int, price domain.Centavos) {
	if store == nil {
		return
	}
	if err := store.SaveStock(ctx, shop, key, qty, price); err != nil {
		log.Printf("save stock %s/%s: %v", shop, key.Name, err)
	}
}

func mirrorDeleteStock(ctx context.Context, store domain.StateStore, shop string, key domain.ProductKey) {
	if store == nil {
		return
	}
	if err := store.DeleteStock(ctx, shop, key); err != nil {
		log.Printf("delete stock %s/%s: %v", shop, key.Name, err)
	}
}

func mirrorAccount(ctx context.Context, store domain.StateStore, a domain.Account) {
	if store == nil {
		return
	}
	if err := store.SaveAccount(ctx, a); err != nil {
		log.Printf("save account %s: %v", a.Username, err)
	}
}

func publish(ctx context.Context, events domain.EventPublisher, eventType string, o domain.Order) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, domain.NewOrderEvent(eventType, o)); err != nil {
		log.Printf("publish %s: %v", eventType, err)
	}
}
