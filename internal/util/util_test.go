package util

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParsePrizeAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"₹1,00,000", 100000},
		{"INR 50,000+", 50000},
		{"50000", 50000},
		{"  42 ", 42},
		{"no digits", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParsePrizeAmount(tt.input); got != tt.want {
			t.Errorf("ParsePrizeAmount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCleanNumericString(t *testing.T) {
	if got := CleanNumericString("₹5L-₹10L prize: 1234"); got != "5101234" {
		t.Errorf("got %q", got)
	}
}

func TestRetryWithBackoff_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), 3, func(attempt int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryWithBackoff_EventualSuccess(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), 3, func(attempt int) error {
		calls++
		if attempt < 1 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	wantErr := errors.New("always fails")
	err := RetryWithBackoff(context.Background(), 0, func(attempt int) error {
		return wantErr
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error should wrap the last failure, got: %v", err)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := RetryWithBackoff(ctx, 5, func(attempt int) error {
		return errors.New("fail")
	})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled retry should return promptly")
	}
}
