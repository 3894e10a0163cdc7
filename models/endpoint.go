package models

// Endpoint is the persisted backup-server address: a private-network host
// and a TCP port, both kept as strings exactly as entered by the user.
// An Endpoint with one or both fields empty is "unconfigured"; validation
// and base-URL derivation are owned by the connection store.
type Endpoint struct {
	// IP is the server address. Must be a private-range IPv4 address
	// (10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16).
	IP string `json:"ip"`

	// Port is the TCP port in string form; parses to an integer in [1,65535].
	Port string `json:"port"`
}

// IsConfigured reports whether both fields are present.
func (e Endpoint) IsConfigured() bool {
	return e.IP != "" && e.Port != ""
}
