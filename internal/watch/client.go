package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CreateAlert is the body of a create call.
type CreateAlert struct {
	Plate    string `json:"plate"`
	Property string `json:"property"`
	Zone     string `json:"zone"`
	Reason   string `json:"reason"`
	Urgency  string `json:"urgency,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Patch is the body of an update call. Nil fields are omitted so the
// server treats them as absent.
type Patch struct {
	Status        *string    `json:"status,omitempty"`
	OwnerResponse *string    `json:"ownerResponse,omitempty"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty"`
	Revision      *uint      `json:"revision,omitempty"`
}

// Client talks to the alert API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) List(ctx context.Context) ([]Alert, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/alerts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var wire []wireAlert
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}

	alerts := make([]Alert, 0, len(wire))
	for _, w := range wire {
		alerts = append(alerts, fromWire(w))
	}

	return alerts, nil
}

func (c *Client) Create(ctx context.Context, input CreateAlert) (Alert, error) {
	var alert Alert

	resp, err := c.send(ctx, http.MethodPost, c.baseURL+"/api/alerts", input)
	if err != nil {
		return alert, fmt.Errorf("failed to create alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return alert, apiError(resp)
	}

	return decodeAlert(resp)
}

func (c *Client) Update(ctx context.Context, id string, patch Patch) (Alert, error) {
	var alert Alert

	resp, err := c.send(ctx, http.MethodPatch, c.baseURL+"/api/alerts/"+id, patch)
	if err != nil {
		return alert, fmt.Errorf("failed to update alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return alert, apiError(resp)
	}

	return decodeAlert(resp)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/alerts/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

func decodeAlert(resp *http.Response) (Alert, error) {
	var wire wireAlert

	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return Alert{}, fmt.Errorf("failed to decode alert: %w", err)
	}

	return fromWire(wire), nil
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}

	return fmt.Errorf("server returned %d", resp.StatusCode)
}
