package notification

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core), "no-reply@certifica.local")

	if err := s.Send(context.Background(), "sindico@condo.com", "Licitação concluída", "corpo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := logs.FilterField(zap.String("to", "sindico@condo.com")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
}

func TestLogSender_Errors(t *testing.T) {
	s := NewLogSender(nil, "")
	if err := s.Send(context.Background(), " ", "s", "b"); !errors.Is(err, ErrEmptyRecipient) {
		t.Fatalf("expected ErrEmptyRecipient, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, "x@y.com", "s", "b"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
