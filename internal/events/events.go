package events

import (
	"context"

	"github.com/ricechain/supply-tracker/internal/logger"
	"github.com/ricechain/supply-tracker/internal/models"
)

// Publisher delivers batch events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, event models.BatchEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) Publish(_ context.Context, event models.BatchEvent) error {
	logger.Log.Debugw("event broker disabled, dropping event", "type", event.Type, "batch_code", event.BatchCode)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
