package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokDetectAttempts = 10
	ngrokDetectInterval = 3 * time.Second
)

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL polls the ngrok local API for a public tunnel URL, retrying
// while ngrok is still starting up. HTTPS tunnels are preferred since
// Telegram only delivers webhooks over HTTPS.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokDetectAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokDetectInterval):
			}
		}

		url, err := fetchTunnelURL(ctx, client, ngrokAPIBase)
		if err == nil {
			return url, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("ngrok URL not detected after %d attempts: %w", ngrokDetectAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, apiBase string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Tunnels []ngrokTunnel `json:"tunnels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
