package hackathon

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	native := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		input  any
		want   time.Time
		wantOK bool
	}{
		{
			name:   "native time passes through",
			input:  native,
			want:   native,
			wantOK: true,
		},
		{
			name:   "pointer to native time",
			input:  &native,
			want:   native,
			wantOK: true,
		},
		{
			name:   "rfc3339 string",
			input:  "2024-06-10T12:00:00Z",
			want:   native,
			wantOK: true,
		},
		{
			name:   "date-only string",
			input:  "2024-06-10",
			want:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "seconds and nanoseconds pair",
			input:  SecondsNanos{Seconds: native.Unix(), Nanoseconds: 500_000_000},
			want:   native.Add(500 * time.Millisecond),
			wantOK: true,
		},
		{
			name:   "serialized map with float fields",
			input:  map[string]any{"seconds": float64(native.Unix()), "nanoseconds": float64(0)},
			want:   native,
			wantOK: true,
		},
		{
			name:   "nil is absent",
			input:  nil,
			wantOK: false,
		},
		{
			name:   "empty string is absent",
			input:  "",
			wantOK: false,
		},
		{
			name:   "garbage string rejected",
			input:  "not a date",
			wantOK: false,
		},
		{
			name:   "unknown type rejected",
			input:  42,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !ok && !got.IsZero() {
				t.Errorf("failed normalize should return zero time, got %v", got)
			}
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	inputs := []any{
		"2024-06-10T12:00:00Z",
		SecondsNanos{Seconds: 1718020800},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, in := range inputs {
		once, ok := NormalizeDate(in)
		if !ok {
			t.Fatalf("NormalizeDate(%v) failed", in)
		}
		twice, ok := NormalizeDate(once)
		if !ok {
			t.Fatalf("second NormalizeDate(%v) failed", once)
		}
		if !once.Equal(twice) {
			t.Errorf("normalize not idempotent: %v != %v", once, twice)
		}
	}
}
