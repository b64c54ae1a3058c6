// Package petclient habla con el shell HTTP de la mascota.
package petclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"virtual-pet/internal/platform/httpclient"
)

// Pet es la vista que devuelve GET /pet.
type Pet struct {
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Hunger       int      `json:"hunger"`
	Fitness      int      `json:"fitness"`
	Children     []string `json:"children"`
	Alive        bool     `json:"alive"`
	State        string   `json:"state"`
	Status       string   `json:"status"`
	CanHaveChild bool     `json:"can_have_child"`
}

type Entry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
	PetName    string    `json:"pet_name"`
	Age        int       `json:"age"`
	Hunger     int       `json:"hunger"`
	Fitness    int       `json:"fitness"`
	Alive      bool      `json:"alive"`
}

// ErrTooYoung se devuelve cuando el server rechaza have-child con 409.
var ErrTooYoung = errors.New("pet too young to have a child")

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

func (c *Client) Get(ctx context.Context) (Pet, error) {
	var p Pet
	err := c.http.Get(ctx, "/pet", &p)
	return p, err
}

// Do ejecuta una acción simple: feed, walk, grow-up o reset.
func (c *Client) Do(ctx context.Context, action string) (Pet, error) {
	switch action {
	case "feed", "walk", "grow-up", "reset":
	default:
		return Pet{}, fmt.Errorf("unknown action %q", action)
	}
	var p Pet
	err := c.http.Post(ctx, "/pet/"+action, nil, &p)
	return p, err
}

func (c *Client) Rename(ctx context.Context, name string) (Pet, error) {
	var p Pet
	err := c.http.Patch(ctx, "/pet", map[string]string{"name": name}, &p)
	return p, err
}

func (c *Client) Adopt(ctx context.Context, child string) (Pet, error) {
	var p Pet
	err := c.http.Post(ctx, "/pet/children", map[string]string{"name": child}, &p)
	return p, err
}

func (c *Client) HaveChild(ctx context.Context) (Pet, error) {
	var p Pet
	err := c.http.Post(ctx, "/pet/have-child", nil, &p)
	if httpclient.StatusCode(err) == http.StatusConflict {
		return Pet{}, ErrTooYoung
	}
	return p, err
}

func (c *Client) Activity(ctx context.Context, limit int, actions ...string) ([]Entry, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(actions) > 0 {
		q.Set("actions", strings.Join(actions, ","))
	}

	path := "/pet/activity"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Entry
	err := c.http.Get(ctx, path, &out)
	return out, err
}
