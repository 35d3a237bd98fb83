package kafka

import "testing"

func TestMessageBuilderAssignsEventID(t *testing.T) {
	msg := NewMessage().
		WithKey("cabana-del-lago").
		WithValue(map[string]string{"hello": "world"}).
		WithEventType("reservation.confirmed").
		WithSource("test").
		Build()

	if msg.GetEventID() == "" {
		t.Error("expected a generated event-id header")
	}
	if msg.GetEventType() != "reservation.confirmed" {
		t.Errorf("expected event-type header, got %q", msg.GetEventType())
	}
	if _, ok := msg.GetHeader(HeaderTimestamp); !ok {
		t.Error("expected a timestamp header")
	}
}

func TestMessageBuilderKeepsExplicitEventID(t *testing.T) {
	msg := NewMessage().
		WithHeader(HeaderEventID, "fixed-id").
		WithValue("payload").
		Build()

	if msg.GetEventID() != "fixed-id" {
		t.Errorf("expected explicit event-id to survive Build, got %q", msg.GetEventID())
	}
}

func TestRetryCount(t *testing.T) {
	msg := NewMessage().WithValue("payload").Build()

	if msg.GetRetryCount() != 0 {
		t.Errorf("expected retry count 0 on fresh message, got %d", msg.GetRetryCount())
	}

	msg.IncrementRetryCount()
	msg.IncrementRetryCount()
	if msg.GetRetryCount() != 2 {
		t.Errorf("expected retry count 2, got %d", msg.GetRetryCount())
	}
}

func TestRetryCountIgnoresGarbageHeader(t *testing.T) {
	msg := NewMessage().WithHeader(HeaderRetryCount, "not-a-number").Build()

	if msg.GetRetryCount() != 0 {
		t.Errorf("expected garbage retry header to read as 0, got %d", msg.GetRetryCount())
	}
}

func TestDecodeValue(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	msg := NewMessage().WithValue(payload{Name: "Cabaña del Lago"}).Build()

	var decoded payload
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("expected decode to succeed, got %v", err)
	}
	if decoded.Name != "Cabaña del Lago" {
		t.Errorf("expected round-tripped name, got %q", decoded.Name)
	}
}
