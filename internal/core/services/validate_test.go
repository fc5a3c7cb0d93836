package services

import (
	"errors"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/profiles"
	"net/url"
	"strings"
	"testing"
)

func validProfile() domain.Profile {
	return domain.Profile{
		Name: "us",
		Data: map[string]string{
			domain.KeyTURN1: "turns:turn-1-cpaas.att.com:443?transport=tcp",
			domain.KeySTUN1: "stun:turn-1-cpaas.att.com:3478?transport=udp",
			domain.KeyTURN2: "turns:turn-2-cpaas.att.com:443?transport=tcp",
			domain.KeySTUN2: "stun:turn-2-cpaas.att.com:3478?transport=udp",
			domain.KeyFQDN:  "oauth-cpaas.att.com",
			domain.KeyBrand: "Kandy",
		},
	}
}

func TestValidateProfile_BuiltInTable(t *testing.T) {
	tbl := profiles.NewTable()
	for _, env := range tbl.Environments() {
		ps, err := tbl.Configs(env)
		if err != nil {
			t.Fatalf("Configs(%s): %v", env, err)
		}
		if err := ValidateProfiles(ps); err != nil {
			t.Errorf("%s: %v", env, err)
		}

		for _, p := range ps {
			for _, key := range []string{domain.KeyTURN1, domain.KeyTURN2} {
				u, err := url.Parse(p.Data[key])
				if err != nil || u.Scheme != "turns" || u.Query().Get("transport") != "tcp" {
					t.Errorf("%s/%s %s: unexpected uri %q", env, p.Name, key, p.Data[key])
				}
			}
			for _, key := range []string{domain.KeySTUN1, domain.KeySTUN2} {
				u, err := url.Parse(p.Data[key])
				if err != nil || u.Scheme != "stun" || u.Query().Get("transport") != "udp" {
					t.Errorf("%s/%s %s: unexpected uri %q", env, p.Name, key, p.Data[key])
				}
			}
		}
	}
}

func TestValidateProfile_MissingKeys(t *testing.T) {
	p := validProfile()
	delete(p.Data, domain.KeyFQDN)
	p.Data[domain.KeyBrand] = ""

	err := ValidateProfile(p)
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestValidateProfile_EmptyName(t *testing.T) {
	p := validProfile()
	p.Name = ""

	if err := ValidateProfile(p); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestValidateProfile_BadURIs(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"turn without tls", domain.KeyTURN1, "turn:turn-1-cpaas.att.com:443?transport=tcp"},
		{"turn over udp", domain.KeyTURN2, "turns:turn-2-cpaas.att.com:443?transport=udp"},
		{"turn without transport", domain.KeyTURN1, "turns:turn-1-cpaas.att.com:443"},
		{"stun as stuns", domain.KeySTUN1, "stuns:turn-1-cpaas.att.com:3478?transport=udp"},
		{"stun over tcp", domain.KeySTUN2, "stun:turn-2-cpaas.att.com:3478?transport=tcp"},
		{"stun bad port", domain.KeySTUN1, "stun:turn-1-cpaas.att.com:abc?transport=udp"},
		{"http url", domain.KeyTURN1, "https://turn-1-cpaas.att.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			p.Data[tt.key] = tt.value

			if err := ValidateProfile(p); !errors.Is(err, ErrInvalidURI) {
				t.Errorf("expected ErrInvalidURI for %q, got %v", tt.value, err)
			}
		})
	}
}

func TestValidateProfile_BadFQDN(t *testing.T) {
	longLabel := strings.Repeat("a", 64)
	for _, fqdn := range []string{
		"https://oauth-cpaas.att.com",
		"localhost",
		"oauth-cpaas.att.com:443",
		"-bad.att.com",
		"bad-.att.com",
		"a..b",
		"oauth_cpaas.att.com",
		"oauth cpaas.att.com",
		longLabel + ".att.com",
	} {
		p := validProfile()
		p.Data[domain.KeyFQDN] = fqdn

		if err := ValidateProfile(p); !errors.Is(err, ErrInvalidFQDN) {
			t.Errorf("expected ErrInvalidFQDN for %q, got %v", fqdn, err)
		}
	}
}

func TestValidateProfile_GoodFQDN(t *testing.T) {
	for _, fqdn := range []string{"oauth-cpaas.att.com", "oauth-ucc.kandy.io", "a.b", "turn-1-cpaas.att.com"} {
		p := validProfile()
		p.Data[domain.KeyFQDN] = fqdn

		if err := ValidateProfile(p); err != nil {
			t.Errorf("expected %q to be accepted, got %v", fqdn, err)
		}
	}
}

func TestValidateProfiles_DuplicateNames(t *testing.T) {
	err := ValidateProfiles([]domain.Profile{validProfile(), validProfile()})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}
