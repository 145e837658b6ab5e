// Package config provides configuration management for go-panlasa
package config

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultListenPort is used when no -webport flag is given
	DefaultListenPort = 8080

	// DefaultSSLPort is used when SSL is enabled without an explicit port
	DefaultSSLPort = 8443
)

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
}

// DefaultWebConfig returns a WebConfig populated with defaults
func DefaultWebConfig() *WebConfig {
	return &WebConfig{
		ListenPort: DefaultListenPort,
	}
}
