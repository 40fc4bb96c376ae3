package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client books tentative event slots on the shared catering calendar.
// The returned event id ends up in the lead's Calendar Event ID column.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateEvent(ctx context.Context, title, date string) (string, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return "", fmt.Errorf("calendar not configured")
	}

	body, err := json.Marshal(CreateEventInput{Title: title, Date: date})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/events", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Calendar: request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("❌ Calendar: API returned status %d: %s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("calendar api error: %d", resp.StatusCode)
	}

	var result CreateEventResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("calendar: %s", result.Error.Message)
	}

	return result.ID, nil
}
