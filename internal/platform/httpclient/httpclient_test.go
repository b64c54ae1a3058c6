package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_RejectsBadURL(t *testing.T) {
	if _, err := New("not a url", 0); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

func TestDoJSON_SendsAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pet/children" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing content type")
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"children": []string{in["name"]}})
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out struct {
		Children []string `json:"children"`
	}
	if err := c.Post(context.Background(), "pet/children", map[string]string{"name": "Spot"}, &out); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(out.Children) != 1 || out.Children[0] != "Spot" {
		t.Fatalf("unexpected response %#v", out)
	}
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pet too young", http.StatusConflict)
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.Post(context.Background(), "/pet/have-child", nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if StatusCode(err) != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", StatusCode(err), err)
	}
	if err.Error() != "http error: status=409 body=pet too young" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
