package ports

import "github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"

// ProfileProvider exposes the ICE server profiles of each environment.
type ProfileProvider interface {
	Configs(env domain.Environment) ([]domain.Profile, error)
	Lookup(env domain.Environment, name string) (domain.Profile, error)
	Environments() []domain.Environment
}
