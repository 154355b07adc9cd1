package natsstan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/shop-order-service/internal/domain"
)

// Publisher emits order events to a NATS Streaming subject. Delivery is
// best-effort; the engine logs and continues on failure.
type Publisher struct {
	sc      stan.Conn
	subject string
}

func Connect(clusterID, clientID, url, subject string) (*Publisher, error) {
	if clientID == "" {
		clientID = fmt.Sprintf("shop-svc-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, err
	}
	return &Publisher{sc: sc, subject: subject}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev domain.OrderEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.sc.Publish(p.subject, b)
}

func (p *Publisher) Close() error { return p.sc.Close() }

var _ domain.EventPublisher = (*Publisher)(nil)
