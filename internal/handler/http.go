package handler

import (
	"encoding/json"
	"errors"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/ports"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/profiles"
	"log/slog"
	"net/http"
	"time"
)

type (
	profileHandler struct {
		provider ports.ProfileProvider
		env      domain.Environment
	}

	iceConfigHandler struct {
		fetcher ports.RTCConfigFetcher
		ttl     time.Duration
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func NewProfileHandler(provider ports.ProfileProvider, env domain.Environment) *profileHandler {
	return &profileHandler{
		provider: provider,
		env:      env,
	}
}

func (h *profileHandler) HandleList(rw http.ResponseWriter, req *http.Request) {
	ps, err := h.provider.Configs(h.env)
	if err != nil {
		slog.Error("Error listing profiles", "env", h.env, "err", err)
		writeJSON(rw, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(rw, http.StatusOK, ps)
}

func (h *profileHandler) HandleGet(rw http.ResponseWriter, req *http.Request) {
	name := req.PathValue("name")
	p, err := h.provider.Lookup(h.env, name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, profiles.ErrProfileNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(rw, status, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(rw, http.StatusOK, p)
}

func NewICEConfigHandler(fetcher ports.RTCConfigFetcher, ttl time.Duration) *iceConfigHandler {
	return &iceConfigHandler{
		fetcher: fetcher,
		ttl:     ttl,
	}
}

func (h *iceConfigHandler) HandleICEConfig(rw http.ResponseWriter, req *http.Request) {
	cfg, err := h.fetcher.FetchConfig(req.Context(), h.ttl)
	if err != nil {
		writeJSON(rw, http.StatusBadGateway, errorResponse{Error: "ice config unavailable"})
		return
	}
	rw.Header().Set("Cache-Control", "no-store")
	writeJSON(rw, http.StatusOK, cfg)
}

func HandleHealth(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = rw.Write([]byte("ok"))
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		slog.Error("Error writing response", "err", err.Error())
	}
}
