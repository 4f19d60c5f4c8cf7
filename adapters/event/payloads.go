package event

import "time"

type ContentEventType string

const (
	ContentEventCreated ContentEventType = "content.created"
	ContentEventUpdated ContentEventType = "content.updated"
	ContentEventDeleted ContentEventType = "content.deleted"
)

// ContentEventPayload tells the worker which cached pages went stale.
// Parent is the affected page key; empty means every page (profile, skills
// and methodology feed multiple surfaces).
type ContentEventPayload struct {
	EventType  ContentEventType `json:"event_type"`
	Resource   string           `json:"resource"`
	ResourceID string           `json:"resource_id,omitempty"`
	Parent     string           `json:"parent,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

const (
	ResourceSection     = "section"
	ResourceProject     = "project"
	ResourceSkill       = "skill"
	ResourceMethodology = "methodology"
	ResourceProfile     = "profile"
)
