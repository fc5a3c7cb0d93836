package handler

import (
	"github.com/gorilla/websocket"
	"github.com/ownerofglory/cpaas-ice-profiles/config"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/domain"
	"github.com/ownerofglory/cpaas-ice-profiles/internal/core/ports"
	"log/slog"
	"net/http"
	"time"
)

const WSPath = basePathWS + "/ice-config"

type (
	wsHandler struct {
		upgrader *websocket.Upgrader
		fetcher  ports.RTCConfigFetcher
		ttl      time.Duration
	}

	ICEConfigMessageType string

	ICEConfigMessage struct {
		MessageType ICEConfigMessageType `json:"type"`
		Config      *domain.WebRTCConfig `json:"config,omitempty"`
		Error       string               `json:"error,omitempty"`
	}
)

const (
	msgConfig  ICEConfigMessageType = "config"
	msgRefresh ICEConfigMessageType = "refresh"
	msgError   ICEConfigMessageType = "error"
)

func NewWSHandler(conf *config.ICEProfilesAppConfig, fetcher ports.RTCConfigFetcher) *wsHandler {
	return &wsHandler{
		fetcher: fetcher,
		ttl:     conf.ConfigTTL,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return false
				}

				for _, allowed := range conf.AllowedOrigins {
					if origin == allowed {
						return true
					}
				}

				return false
			},
		},
	}
}

// HandleWS pushes the ICE config on connect and again on every refresh request.
func (h *wsHandler) HandleWS(rw http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(rw, req, nil)
	if err != nil {
		slog.Error("Error when upgrading to websocket", "err", err.Error())
		return
	}
	defer conn.Close()

	slog.Info("Client connected", "remote", conn.RemoteAddr().String())
	if err := h.sendConfig(req, conn); err != nil {
		slog.Error("Error sending initial ice config", "err", err.Error())
		return
	}

	for {
		var m ICEConfigMessage
		err := conn.ReadJSON(&m)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Error("Error when reading websocket message", "err", err.Error())
			}
			break
		}

		switch m.MessageType {
		case msgRefresh:
			err = h.sendConfig(req, conn)
		default:
			err = conn.WriteJSON(&ICEConfigMessage{
				MessageType: msgError,
				Error:       "unsupported message type: " + string(m.MessageType),
			})
		}
		if err != nil {
			slog.Error("Error when sending message", "err", err.Error())
			break
		}
	}
	slog.Info("Client disconnected", "remote", conn.RemoteAddr().String())
}

func (h *wsHandler) sendConfig(req *http.Request, conn *websocket.Conn) error {
	cfg, err := h.fetcher.FetchConfig(req.Context(), h.ttl)
	if err != nil {
		return conn.WriteJSON(&ICEConfigMessage{MessageType: msgError, Error: "ice config unavailable"})
	}
	return conn.WriteJSON(&ICEConfigMessage{MessageType: msgConfig, Config: &cfg})
}
