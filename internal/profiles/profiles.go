package profiles

import (
	"errors"
	"fmt"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnknownEnvironment = errors.New("unknown ICE environment")
	ErrProfileNotFound    = errors.New("ICE profile not found")
)

// ICE server urls per environment. Only one environment is active per process.
var variants = map[domain.Environment][]domain.Profile{
	domain.EnvironmentProduction: {
		{
			Name: "us",
			Data: map[string]string{
				domain.KeyTURN1: "turns:turn-1-cpaas.att.com:443?transport=tcp",
				domain.KeySTUN1: "stun:turn-1-cpaas.att.com:3478?transport=udp",
				domain.KeyTURN2: "turns:turn-2-cpaas.att.com:443?transport=tcp",
				domain.KeySTUN2: "stun:turn-2-cpaas.att.com:3478?transport=udp",
				domain.KeyFQDN:  "oauth-cpaas.att.com",
				domain.KeyBrand: "Kandy",
			},
		},
	},
	// Placeholder hosts: only the production endpoints are published. The
	// kandy and genband variants must be replaced with real endpoints before use.
	domain.EnvironmentKandy: {
		{
			Name: "us",
			Data: map[string]string{
				domain.KeyTURN1: "turns:turn-ucc-1.kandy.io:443?transport=tcp",
				domain.KeySTUN1: "stun:turn-ucc-1.kandy.io:3478?transport=udp",
				domain.KeyTURN2: "turns:turn-ucc-2.kandy.io:443?transport=tcp",
				domain.KeySTUN2: "stun:turn-ucc-2.kandy.io:3478?transport=udp",
				domain.KeyFQDN:  "oauth-ucc.kandy.io",
				domain.KeyBrand: "Kandy",
			},
		},
	},
	domain.EnvironmentGenband: {
		{
			Name: "us",
			Data: map[string]string{
				domain.KeyTURN1: "turns:turn-ucc-1.genband.com:443?transport=tcp",
				domain.KeySTUN1: "stun:turn-ucc-1.genband.com:3478?transport=udp",
				domain.KeyTURN2: "turns:turn-ucc-2.genband.com:443?transport=tcp",
				domain.KeySTUN2: "stun:turn-ucc-2.genband.com:3478?transport=udp",
				domain.KeyFQDN:  "oauth-ucc.genband.com",
				domain.KeyBrand: "Kandy",
			},
		},
	},
}

type table struct {
	variants map[domain.Environment][]domain.Profile
}

// NewTable returns the built-in profile table.
func NewTable() *table {
	return &table{variants: variants}
}

// ParseEnvironment maps a configuration value onto a known environment.
func ParseEnvironment(raw string) (domain.Environment, error) {
	env := domain.Environment(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := variants[env]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, raw)
	}
	return env, nil
}

// Configs returns a copy of every profile of env in insertion order.
func (t *table) Configs(env domain.Environment) ([]domain.Profile, error) {
	ps, ok := t.variants[env]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}

	out := make([]domain.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Lookup returns a copy of the profile called name.
func (t *table) Lookup(env domain.Environment, name string) (domain.Profile, error) {
	ps, ok := t.variants[env]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}

	for _, p := range ps {
		if p.Name == name {
			return p.Clone(), nil
		}
	}
	return domain.Profile{}, fmt.Errorf("%w: %q in %s", ErrProfileNotFound, name, env)
}

// Environments returns the known environments sorted by name.
func (t *table) Environments() []domain.Environment {
	return slices.Sorted(maps.Keys(t.variants))
}
