package logging

import (
	"context"
	"testing"
)

func TestWithPollID(t *testing.T) {
	ctx := WithPollID(context.Background(), 42)

	got, ok := GetPollID(ctx)
	if !ok {
		t.Fatal("GetPollID() ok = false, want true")
	}
	if got != 42 {
		t.Errorf("GetPollID() = %d, want %d", got, 42)
	}
}

func TestWithEndpoint(t *testing.T) {
	endpoint := "http://localhost:5000/api/notifications"

	ctx := WithEndpoint(context.Background(), endpoint)
	got := GetEndpoint(ctx)

	if got != endpoint {
		t.Errorf("GetEndpoint() = %q, want %q", got, endpoint)
	}
}

func TestGetPollID_NotPresent(t *testing.T) {
	if _, ok := GetPollID(context.Background()); ok {
		t.Error("GetPollID() ok = true, want false")
	}
}

func TestGetEndpoint_NotPresent(t *testing.T) {
	if got := GetEndpoint(context.Background()); got != "" {
		t.Errorf("GetEndpoint() = %q, want empty string", got)
	}
}
