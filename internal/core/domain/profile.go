package domain

// Environment selects one of the mutually exclusive profile variants.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentKandy      Environment = "kandy"
	EnvironmentGenband    Environment = "genband"
)

// Recognized profile data keys.
const (
	KeyTURN1 = "KANDYTURN1"
	KeyTURN2 = "KANDYTURN2"
	KeySTUN1 = "KANDYSTUN1"
	KeySTUN2 = "KANDYSTUN2"
	KeyFQDN  = "KANDYFQDN"
	KeyBrand = "KANDY"
)

// ProfileKeys lists every key a usable profile carries.
var ProfileKeys = []string{KeyTURN1, KeyTURN2, KeySTUN1, KeySTUN2, KeyFQDN, KeyBrand}

// Profile is a named set of ICE server URLs and the OAuth domain for one region.
type Profile struct {
	Name string            `json:"name"`
	Data map[string]string `json:"data"`
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	data := make(map[string]string, len(p.Data))
	for k, v := range p.Data {
		data[k] = v
	}
	return Profile{Name: p.Name, Data: data}
}
