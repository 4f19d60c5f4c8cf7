package service

import (
	"context"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
)

// Publisher is the content-event port, satisfied by the Kafka producer.
type Publisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
}
