package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const phoneSuffix = "@s.whatsapp.net"

// Client sends outbound messages through a whapi.cloud-style gateway.
// Delivery is best-effort: one attempt, no retry.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type sendTextRequest struct {
	TypingTime int    `json:"typing_time"`
	To         string `json:"to"`
	Body       string `json:"body"`
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// cleanPhone strips formatting so the gateway always receives digits only.
func cleanPhone(phone string) string {
	r := strings.NewReplacer("+", "", "-", "", " ", "")
	return r.Replace(phone)
}

// SendText posts one text message. Returns whether the gateway accepted it;
// only a 200 response counts as delivered.
func (c *Client) SendText(ctx context.Context, phone, body string) (bool, error) {
	payload := sendTextRequest{
		TypingTime: 0,
		To:         cleanPhone(phone) + phoneSuffix,
		Body:       body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to marshal request data: %w", err)
	}

	url := fmt.Sprintf("%s/messages/text", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	return true, nil
}
