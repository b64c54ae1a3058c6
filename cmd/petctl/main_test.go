package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"virtual-pet/internal/router"
)

func TestRun_FeedAfterGrowing(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()
	ctx := context.Background()

	var out bytes.Buffer
	for i := 0; i < 4; i++ {
		out.Reset()
		if err := run(ctx, []string{"-addr", ts.URL, "grow-up"}, &out); err != nil {
			t.Fatalf("grow-up: %v", err)
		}
	}
	if !strings.Contains(out.String(), "(unnamed) is: Dead") {
		t.Fatalf("expected dead pet, got %q", out.String())
	}

	out.Reset()
	if err := run(ctx, []string{"-addr", ts.URL, "rename", "Rusty"}, &out); err != nil {
		t.Fatalf("rename: %v", err)
	}
	out.Reset()
	if err := run(ctx, []string{"-addr", ts.URL, "feed"}, &out); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if !strings.Contains(out.String(), "Age: 4 Hunger: 9 Fitness: -2") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := run(ctx, []string{"-addr", ts.URL, "have-child"}, &out); err == nil {
		t.Fatalf("expected have-child to fail for a young pet")
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	ctx := context.Background()

	if err := run(ctx, nil, &out); err == nil {
		t.Fatalf("expected error without command")
	}
	if err := run(ctx, []string{"-addr", "http://127.0.0.1:1", "dance"}, &out); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	if err := run(ctx, []string{"-addr", "http://127.0.0.1:1", "adopt"}, &out); err == nil {
		t.Fatalf("expected error for adopt without name")
	}
}
