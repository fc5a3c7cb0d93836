package services

import (
	"errors"
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"golang.org/x/net/idna"
	"net/url"
	"strings"
)

var (
	ErrEmptyName     = errors.New("profile name is empty")
	ErrDuplicateName = errors.New("duplicate profile name")
	ErrMissingKey    = errors.New("missing profile key")
	ErrInvalidURI    = errors.New("invalid ICE server uri")
	ErrInvalidFQDN   = errors.New("invalid OAuth fqdn")
)

type uriRule struct {
	keys      []string
	scheme    string
	transport string
}

var uriRules = []uriRule{
	{keys: []string{domain.KeyTURN1, domain.KeyTURN2}, scheme: "turns", transport: "tcp"},
	{keys: []string{domain.KeySTUN1, domain.KeySTUN2}, scheme: "stun", transport: "udp"},
}

// ValidateProfile reports every reason p cannot be handed to an ICE agent.
func ValidateProfile(p domain.Profile) error {
	var errs []error
	if p.Name == "" {
		errs = append(errs, ErrEmptyName)
	}

	for _, key := range domain.ProfileKeys {
		if p.Data[key] == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingKey, key))
		}
	}

	for _, rule := range uriRules {
		for _, key := range rule.keys {
			raw := p.Data[key]
			if raw == "" {
				continue
			}
			if err := checkICEURI(raw, rule.scheme, rule.transport); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}

	if fqdn := p.Data[domain.KeyFQDN]; fqdn != "" && !isHostname(fqdn) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFQDN, fqdn))
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile %q: %w", p.Name, errors.Join(errs...))
	}
	return nil
}

// ValidateProfiles validates each profile and requires unique names.
func ValidateProfiles(ps []domain.Profile) error {
	var errs []error
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if err := ValidateProfile(p); err != nil {
			errs = append(errs, err)
		}
		if _, ok := seen[p.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name))
		}
		seen[p.Name] = struct{}{}
	}
	return errors.Join(errs...)
}

func checkICEURI(raw, scheme, transport string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if u.Scheme != scheme {
		return fmt.Errorf("%w: scheme %q, want %q", ErrInvalidURI, u.Scheme, scheme)
	}
	if got := u.Query().Get("transport"); got != transport {
		return fmt.Errorf("%w: transport %q, want %q", ErrInvalidURI, got, transport)
	}
	if _, err := parseICEURI(raw); err != nil {
		return err
	}
	return nil
}

var hostnameProfile = idna.New(idna.ValidateForRegistration(), idna.StrictDomainName(true))

// isHostname accepts registrable DNS names with at least two labels.
func isHostname(s string) bool {
	if strings.Count(s, ".") < 1 {
		return false
	}
	_, err := hostnameProfile.ToASCII(s)
	return err == nil
}
