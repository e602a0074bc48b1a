package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewEmitsServiceField(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "wishlists-test", Output: &buf})

	logg.Info(context.Background(), "hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["service"] != "wishlists-test" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["message"] != "hello" {
		t.Fatalf("expected message hello, got %v", entry["message"])
	}
}

func TestWithFieldsCarriesThroughContext(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "wishlists-test", Output: &buf})

	ctx := logg.WithFields(context.Background(), map[string]any{"wishlist_id": 7})
	ctx = logg.WithRequestID(ctx, "req-123")
	logg.Info(ctx, "tagged")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["wishlist_id"] != float64(7) {
		t.Fatalf("expected wishlist_id 7, got %v", entry["wishlist_id"])
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("expected request_id, got %v", entry["request_id"])
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != zerolog.DebugLevel {
		t.Fatal("expected debug level")
	}
	if ParseLevel("") != zerolog.InfoLevel {
		t.Fatal("expected info level for empty string")
	}
	if ParseLevel("nonsense") != zerolog.InfoLevel {
		t.Fatal("expected info level fallback")
	}
}
