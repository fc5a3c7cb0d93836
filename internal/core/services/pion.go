package services

import (
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/pion/stun/v3"
	"github.com/pion/webrtc/v4"
	"strings"
)

// ToPionConfiguration turns cfg into a configuration a pion PeerConnection accepts.
// STUN urls lose their transport query since RFC 7064 STUN uris carry none.
func ToPionConfiguration(cfg domain.WebRTCConfig) (webrtc.Configuration, error) {
	servers := make([]webrtc.ICEServer, 0, len(cfg.ICEServers))
	for _, s := range cfg.ICEServers {
		urls := make([]string, 0, len(s.URLs))
		for _, raw := range s.URLs {
			if _, err := parseICEURI(raw); err != nil {
				return webrtc.Configuration{}, err
			}
			urls = append(urls, normalizeICEURL(raw))
		}

		server := webrtc.ICEServer{
			URLs:     urls,
			Username: s.Username,
		}
		if s.Credential != "" {
			server.Credential = s.Credential
			server.CredentialType = webrtc.ICECredentialTypePassword
		}
		servers = append(servers, server)
	}

	return webrtc.Configuration{
		ICEServers:   servers,
		BundlePolicy: webrtc.BundlePolicyMaxBundle,
	}, nil
}

func parseICEURI(raw string) (*stun.URI, error) {
	u, err := stun.ParseURI(normalizeICEURL(raw))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidURI, raw, err)
	}
	return u, nil
}

func normalizeICEURL(raw string) string {
	if !strings.HasPrefix(raw, "stun:") && !strings.HasPrefix(raw, "stuns:") {
		return raw
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
