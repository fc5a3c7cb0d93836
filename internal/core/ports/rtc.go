package ports

import (
	"context"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"time"
)

type RTCConfigFetcher interface {
	FetchConfig(ctx context.Context, duration time.Duration) (domain.WebRTCConfig, error)
}

type RTCConfigClient interface {
	GetConfig(ctx context.Context, duration time.Duration) (*domain.WebRTCConfig, error)
}
