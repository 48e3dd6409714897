package newbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"twingrid/structs"

	"github.com/joho/godotenv"
)

// Client calls the NewBook-style reservation API. All grid inputs
// (bookings and housekeeping tasks) come through it; the service never
// writes back.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// Default is the process-wide client, configured from the environment.
var Default = NewClientFromEnv()

// NewClientFromEnv builds a client from NEWBOOK_API_URL and
// NEWBOOK_API_KEY.
func NewClientFromEnv() *Client {
	_ = godotenv.Load()
	return &Client{
		BaseURL: os.Getenv("NEWBOOK_API_URL"),
		APIKey:  os.Getenv("NEWBOOK_API_KEY"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type bookingsEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []structs.Booking `json:"data"`
}

type tasksEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []structs.Task `json:"data"`
}

// Bookings fetches the reservations staying within [from, to].
func (c *Client) Bookings(ctx context.Context, from, to string) ([]structs.Booking, error) {
	payload := map[string]any{
		"api_key":     c.APIKey,
		"period_from": from,
		"period_to":   to,
		"list_type":   "staying",
	}
	var env bookingsEnvelope
	if err := c.post(ctx, "bookings_list", payload, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("bookings_list: %s", env.Message)
	}
	return env.Data, nil
}

// Tasks fetches the tasks of the given types within [from, to].
func (c *Client) Tasks(ctx context.Context, from, to string, typeIDs []string) ([]structs.Task, error) {
	payload := map[string]any{
		"api_key":       c.APIKey,
		"period_from":   from,
		"period_to":     to,
		"task_type_ids": typeIDs,
	}
	var env tasksEnvelope
	if err := c.post(ctx, "tasks_list", payload, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("tasks_list: %s", env.Message)
	}
	return env.Data, nil
}

func (c *Client) post(ctx context.Context, method string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
