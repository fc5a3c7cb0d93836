package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://rtc.live.cloudflare.com/v1/turn/keys"
	defaultTTL     = 60 * 60
)

type configRequest struct {
	TTL int `json:"ttl"`
}

type configResponse struct {
	ICEServers []domain.ICEServer `json:"iceServers"`
}

type cloudFlareRTCConfigClient struct {
	baseURL      string
	turnKey      string
	turnAPIToken string
	client       *http.Client
}

// NewClient creates a TURN credential client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL, turnKey, turnAPIToken string, client *http.Client) *cloudFlareRTCConfigClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &cloudFlareRTCConfigClient{
		baseURL:      baseURL,
		turnKey:      turnKey,
		turnAPIToken: turnAPIToken,
		client:       client,
	}
}

func (c *cloudFlareRTCConfigClient) GetConfig(ctx context.Context, duration time.Duration) (*domain.WebRTCConfig, error) {
	url := fmt.Sprintf("%s/%s/credentials/generate-ice-servers", c.baseURL, c.turnKey)
	ttl := int(duration.Seconds())
	if ttl <= 0 {
		ttl = defaultTTL
	}
	reqBody := &configRequest{
		TTL: ttl,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		slog.Error("Error marshalling request body", "error", err)
		return nil, fmt.Errorf("error marshalling request body: %w", err)
	}

	clientReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		slog.Error("Error creating request", "error", err)
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	clientReq.Header.Add("Authorization", "Bearer "+c.turnAPIToken)
	clientReq.Header.Add("Content-Type", "application/json")

	res, err := c.client.Do(clientReq)
	if err != nil {
		slog.Error("Error getting rtc config", "error", err)
		return nil, fmt.Errorf("error getting cloudflare rtc config: %w", err)
	}
	defer res.Body.Close()

	respPayload, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("Error reading response body", "error", err)
		return nil, fmt.Errorf("error reading cloudflare response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		slog.Error("Unexpected cloudflare response", "status", res.StatusCode)
		return nil, fmt.Errorf("cloudflare responded with status %d: %s", res.StatusCode, bytes.TrimSpace(respPayload))
	}

	var cloudFlareConfig configResponse
	err = json.Unmarshal(respPayload, &cloudFlareConfig)
	if err != nil {
		slog.Error("Error unmarshalling response body", "error", err)
		return nil, fmt.Errorf("error unmarshalling cloudflare response body: %w", err)
	}

	return &domain.WebRTCConfig{
		Profile:    "cloudflare",
		TTL:        &reqBody.TTL,
		ICEServers: cloudFlareConfig.ICEServers,
	}, nil
}
