package handler

const (
	basePathAPI = "/api/v1"
	basePathWS  = "/ws"

	ProfilesPath  = basePathAPI + "/profiles"
	ProfilePath   = ProfilesPath + "/{name}"
	ICEConfigPath = basePathAPI + "/ice-config"
	HealthPath    = "/healthz"
)
