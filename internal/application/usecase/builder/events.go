package builder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	"github.com/ngocmaitran/portfolio-cms/internal/application/service"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
)

// publishSectionEvent fires a content event without blocking the caller;
// delivery failure is logged and otherwise ignored.
func publishSectionEvent(events service.Publisher, log logger.Logger, eventType event.ContentEventType, sectionID, parent string) {
	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   event.ResourceSection,
			ResourceID: sectionID,
			Parent:     parent,
			OccurredAt: time.Now().UTC(),
		}
		if err := events.PublishContentEvent(context.Background(), payload); err != nil {
			log.Error("Failed to publish section event", err,
				zap.String("section_id", sectionID), zap.String("parent", parent))
		}
	}()
}
