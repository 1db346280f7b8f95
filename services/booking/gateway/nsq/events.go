package gateway_nsq

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
	nsqpkg "github.com/plutoride/vendor-app/internal/pkg/nsq"
)

// DecisionGateway publishes booking decision events to an NSQ topic
type DecisionGateway struct {
	producer *nsqpkg.Producer
	topic    string
}

// NewDecisionGateway creates a new decision event gateway
func NewDecisionGateway(producer *nsqpkg.Producer, topic string) *DecisionGateway {
	return &DecisionGateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishDecision publishes a single decision event
func (g *DecisionGateway) PublishDecision(ctx context.Context, event models.BookingDecisionEvent) error {
	return g.producer.Publish(g.topic, event)
}
