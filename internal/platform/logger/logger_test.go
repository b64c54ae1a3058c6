package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		" error ": Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStdLogger_TextSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "virtual-pet", Output: &buf}).(*StdLogger)
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Debug("hidden", nil)
	l.Info("pet fed", map[string]any{"hunger": 3})

	out := strings.TrimSpace(buf.String())
	want := "app=virtual-pet hunger=3 level=info msg=pet fed ts=2025-01-02T03:04:05Z"
	if out != want {
		t.Fatalf("unexpected line:\n got %q\nwant %q", out, want)
	}
}

func TestStdLogger_WithJSON(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})
	l := base.With(map[string]any{"component": "pets", "": "ignored"})

	l.Warn("restore failed", map[string]any{"error": "boom"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "pets" || entry["level"] != "warn" || entry["error"] != "boom" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key should be dropped: %#v", entry)
	}
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	l.Error("nothing", map[string]any{"x": 1})
}
