package services

import (
	"context"
	"errors"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/pion/stun/v3"
	"github.com/pion/webrtc/v4"
	"reflect"
	"testing"
)

func TestToPionConfiguration_StaticProfile(t *testing.T) {
	client, err := NewStaticRTCConfigClient(validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := client.GetConfig(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pc, err := ToPionConfiguration(*cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pc.ICEServers) != 2 {
		t.Fatalf("expected 2 ice servers, got %d", len(pc.ICEServers))
	}
	wantTURN := []string{
		"turns:turn-1-cpaas.att.com:443?transport=tcp",
		"turns:turn-2-cpaas.att.com:443?transport=tcp",
	}
	if !reflect.DeepEqual(pc.ICEServers[0].URLs, wantTURN) {
		t.Errorf("expected TURN urls %v, got %v", wantTURN, pc.ICEServers[0].URLs)
	}
	wantSTUN := []string{
		"stun:turn-1-cpaas.att.com:3478",
		"stun:turn-2-cpaas.att.com:3478",
	}
	if !reflect.DeepEqual(pc.ICEServers[1].URLs, wantSTUN) {
		t.Errorf("expected STUN urls %v, got %v", wantSTUN, pc.ICEServers[1].URLs)
	}
	if pc.BundlePolicy != webrtc.BundlePolicyMaxBundle {
		t.Errorf("expected max-bundle policy, got %s", pc.BundlePolicy)
	}
}

func TestToPionConfiguration_Credentials(t *testing.T) {
	pc, err := ToPionConfiguration(domain.WebRTCConfig{
		ICEServers: []domain.ICEServer{{
			URLs:       []string{"turn:turn.example.com:3478?transport=udp"},
			Username:   "alice",
			Credential: "secret",
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := pc.ICEServers[0]
	if s.Username != "alice" || s.Credential != "secret" || s.CredentialType != webrtc.ICECredentialTypePassword {
		t.Errorf("unexpected credentials: %+v", s)
	}
}

func TestToPionConfiguration_InvalidURI(t *testing.T) {
	_, err := ToPionConfiguration(domain.WebRTCConfig{
		ICEServers: []domain.ICEServer{{URLs: []string{"http://example.com"}}},
	})
	if !errors.Is(err, ErrInvalidURI) {
		t.Errorf("expected ErrInvalidURI, got %v", err)
	}
}

func TestParseICEURI(t *testing.T) {
	turn, err := parseICEURI("turns:turn-1-cpaas.att.com:443?transport=tcp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn.Scheme != stun.SchemeTypeTURNS || turn.Proto != stun.ProtoTypeTCP || turn.Port != 443 {
		t.Errorf("unexpected TURN uri: %+v", turn)
	}

	st, err := parseICEURI("stun:turn-1-cpaas.att.com:3478?transport=udp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Scheme != stun.SchemeTypeSTUN || st.Proto != stun.ProtoTypeUDP || st.Port != 3478 {
		t.Errorf("unexpected STUN uri: %+v", st)
	}
}
