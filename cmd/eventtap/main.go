package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	stan "github.com/nats-io/stan.go"

	"github.com/example/shop-order-service/internal/domain"
)

// eventtap subscribes to the order-events subject and prints every
// envelope, for watching a running shop from a second terminal.
func main() {
	_ = godotenv.Load()
	clusterID := getenv("STAN_CLUSTER_ID", "shop-cluster")
	clientID := getenv("STAN_TAP_ID", fmt.Sprintf("shop-eventtap-%d", time.Now().UnixNano()))
	natsURL := getenv("NATS_URL", "nats://localhost:4222")
	subject := getenv("STAN_SUBJECT", "shop.order.events")

	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer sc.Close()

	_, err = sc.Subscribe(subject, func(m *stan.Msg) {
		var ev domain.OrderEvent
		if err := json.Unmarshal(m.Data, &ev); err != nil {
			log.Printf("invalid event: %v", err)
			return
		}
		log.Printf("%s %s buyer=%s shop=%s product=%q qty=%d total=%v",
			ev.OccurredAt.Format(time.RFC3339), ev.EventType,
			ev.Order.Buyer, ev.Order.Shop, ev.Order.Product.Name,
			ev.Order.Quantity, ev.Order.Total)
	}, stan.DeliverAllAvailable())
	if err != nil {
		log.Fatalf("stan subscribe: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
