package domain

// ICEServer is a single entry of an RTCConfiguration iceServers list.
type ICEServer struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username,omitempty"`
	Credential string   `json:"credential,omitempty"`
}

// WebRTCConfig is what a client needs to initialize its ICE agent.
type WebRTCConfig struct {
	Profile    string      `json:"profile,omitempty"`
	ICEServers []ICEServer `json:"iceServers"`
	OAuthFQDN  string      `json:"oauthFqdn,omitempty"`
	Brand      string      `json:"brand,omitempty"`
	TTL        *int        `json:"ttl"`
}
