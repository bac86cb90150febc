package mq

import (
	"context"
	"encoding/json"
	"log"

	"dinesmart/rdx"
)

// Index describes a document lifecycle event emitted by write handlers.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

const channel = "meal-events"

// Emit publishes a lifecycle event to Redis. Fire-and-forget: a broker
// outage must never fail the request that triggered the event.
func Emit(ctx context.Context, eventName string, content Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s event: %v", eventName, err)
	}
}
