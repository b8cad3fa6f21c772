package hackathon

import (
	"log/slog"
	"time"
)

// SecondsNanos is the serialized form of a store timestamp that crossed a
// JSON boundary: {"seconds": ..., "nanoseconds": ...}.
type SecondsNanos struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// NormalizeDate converts any of the date representations a listing field may
// arrive in to a canonical time.Time. The fallback order is fixed: native
// time value, timestamp wrapper, RFC 3339 / date-only string, then a
// seconds/nanoseconds pair (either typed or as a decoded JSON map).
//
// Returns ok=false for nil input and for input that no branch could parse.
// Unparsable non-nil input is logged as a diagnostic, never an error.
// Idempotent: a canonical time.Time passes through unchanged.
func NormalizeDate(v any) (time.Time, bool) {
	if v == nil {
		return time.Time{}, false
	}

	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case interface{ AsTime() time.Time }:
		// Protobuf / store timestamp wrappers.
		return d.AsTime(), true
	case string:
		if d == "" {
			return time.Time{}, false
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
	case SecondsNanos:
		return fromSecondsNanos(d.Seconds, d.Nanoseconds), true
	case map[string]any:
		if secs, ok := numericField(d, "seconds"); ok {
			nanos, _ := numericField(d, "nanoseconds")
			return fromSecondsNanos(secs, nanos), true
		}
	}

	slog.Warn("could not parse date", "value", v)
	return time.Time{}, false
}

func fromSecondsNanos(secs, nanos int64) time.Time {
	ms := secs*1000 + nanos/1e6
	return time.UnixMilli(ms).UTC()
}

func numericField(m map[string]any, key string) (int64, bool) {
	switch n := m[key].(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
