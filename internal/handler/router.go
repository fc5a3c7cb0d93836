package handler

import (
	"github.com/ownerofglory/cpaas-ice-profiles/config"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/ports"
	"net/http"
)

// NewRouter wires every endpoint for the active environment.
func NewRouter(conf *config.ICEProfilesAppConfig, env domain.Environment, provider ports.ProfileProvider, fetcher ports.RTCConfigFetcher) *http.ServeMux {
	profileH := NewProfileHandler(provider, env)
	iceH := NewICEConfigHandler(fetcher, conf.ConfigTTL)
	wsH := NewWSHandler(conf, fetcher)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ProfilesPath, profileH.HandleList)
	mux.HandleFunc("GET "+ProfilePath, profileH.HandleGet)
	mux.HandleFunc("GET "+ICEConfigPath, iceH.HandleICEConfig)
	mux.HandleFunc("GET "+WSPath, wsH.HandleWS)
	mux.HandleFunc("GET "+HealthPath, HandleHealth)
	return mux
}
