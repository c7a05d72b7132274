package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var received []Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		t.Error("handler for unrelated event type invoked")
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventTicketCreated,
		UserID:    "u1",
		Timestamp: time.Now(),
		Payload:   TicketCreatedPayload{TicketID: "t1", Title: "Broken"},
	}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(received) != 1 || received[0].ID != "evt-1" {
		t.Fatalf("event not delivered: %+v", received)
	}
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var secondRan bool
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, _ Event) error {
		secondRan = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !secondRan {
		t.Fatal("later handler skipped after earlier failure")
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())
	if err := d.Publish(context.Background(), Event{Type: EventTicketStatusChanged}); err != nil {
		t.Fatalf("Publish with no subscribers: %v", err)
	}
}
