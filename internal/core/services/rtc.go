package services

import (
	"context"
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/ports"
	"github.com/pion/webrtc/v4"
	"log/slog"
	"slices"
	"time"
)

type rtcConfigFetcher struct {
	client ports.RTCConfigClient
}

func NewRTCConfigFetcher(client ports.RTCConfigClient) *rtcConfigFetcher {
	return &rtcConfigFetcher{
		client: client,
	}
}

func (r *rtcConfigFetcher) FetchConfig(ctx context.Context, duration time.Duration) (domain.WebRTCConfig, error) {
	config, err := r.client.GetConfig(ctx, duration)
	if err != nil {
		slog.Error("Error when fetching config", "err", err)
		return domain.WebRTCConfig{}, fmt.Errorf("error when fetching config: %w", err)
	}

	return *config, nil
}

// staticRTCConfigClient serves the ICE servers of a single profile.
type staticRTCConfigClient struct {
	profile    domain.Profile
	iceServers []webrtc.ICEServer
}

// NewStaticRTCConfigClient validates profile and derives the servers an ICE agent accepts.
func NewStaticRTCConfigClient(profile domain.Profile) (*staticRTCConfigClient, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	d := profile.Data
	pionCfg, err := ToPionConfiguration(domain.WebRTCConfig{
		ICEServers: []domain.ICEServer{
			{URLs: []string{d[domain.KeyTURN1], d[domain.KeyTURN2]}},
			{URLs: []string{d[domain.KeySTUN1], d[domain.KeySTUN2]}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", profile.Name, err)
	}

	return &staticRTCConfigClient{
		profile:    profile.Clone(),
		iceServers: pionCfg.ICEServers,
	}, nil
}

// GetConfig ignores duration: static servers do not expire, so TTL stays nil.
func (c *staticRTCConfigClient) GetConfig(ctx context.Context, _ time.Duration) (*domain.WebRTCConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	servers := make([]domain.ICEServer, 0, len(c.iceServers))
	for _, s := range c.iceServers {
		servers = append(servers, domain.ICEServer{
			URLs:     slices.Clone(s.URLs),
			Username: s.Username,
		})
	}

	return &domain.WebRTCConfig{
		Profile:    c.profile.Name,
		ICEServers: servers,
		OAuthFQDN:  c.profile.Data[domain.KeyFQDN],
		Brand:      c.profile.Data[domain.KeyBrand],
	}, nil
}
