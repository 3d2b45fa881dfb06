package luis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the LUIS prediction API client for one published application.
type Client struct {
	endpoint        string
	appID           string
	subscriptionKey string
	httpClient      *http.Client
}

// NewClient creates a new LUIS client.
// endpoint is the regional Cognitive Services base URL,
// e.g. "https://westus.api.cognitive.microsoft.com".
func NewClient(endpoint, appID, subscriptionKey string) *Client {
	return &Client{
		endpoint:        endpoint,
		appID:           appID,
		subscriptionKey: subscriptionKey,
		httpClient:      &http.Client{},
	}
}

// SetAPIURL overrides the API endpoint for testing purposes.
func (c *Client) SetAPIURL(endpoint string) {
	c.endpoint = endpoint
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to tune timeouts.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Predict sends the utterance to the prediction endpoint and returns the
// recognition result. Cancellation of ctx aborts the in-flight request.
func (c *Client) Predict(ctx context.Context, query string) (RecognitionResult, error) {
	params := url.Values{}
	params.Set("subscription-key", c.subscriptionKey)
	params.Set("verbose", "true")
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s/luis/v2.0/apps/%s?%s", c.endpoint, c.appID, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("luis: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("luis: failed to call prediction API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return RecognitionResult{}, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result RecognitionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return RecognitionResult{}, fmt.Errorf("luis: failed to decode prediction response: %w", err)
	}

	return result, nil
}

// APIError is a non-200 response from the prediction endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("luis: prediction API error %d: %s", e.StatusCode, e.Body)
}
