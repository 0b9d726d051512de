package config

import "time"

// CurrentVersion is the preferences file format version
const CurrentVersion = 1

// Defaults used when the file or a section is missing
const (
	DefaultPort        = 8080
	DefaultScanTimeout = 5
)

// Config represents the entire preferences file.
type Config struct {
	Version   int             `yaml:"version"`
	Server    *ServerPrefs    `yaml:"server,omitempty"`
	Discovery *DiscoveryPrefs `yaml:"discovery,omitempty"`
	Logging   *LoggingPrefs   `yaml:"logging,omitempty"`
}

// ServerPrefs configures the browser form server.
type ServerPrefs struct {
	Host         string `yaml:"host"`                    // Listen address (empty = all interfaces)
	Port         int    `yaml:"port"`                    // Listen port
	Advertise    bool   `yaml:"advertise"`               // Announce the server over mDNS
	InstanceName string `yaml:"instance_name,omitempty"` // mDNS instance name (default: hostname)
}

// DiscoveryPrefs configures the scan command.
type DiscoveryPrefs struct {
	Timeout int `yaml:"timeout"` // Scan timeout in seconds
}

// LoggingPrefs configures log output.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error (empty = silent)
	File  string `yaml:"file,omitempty"`  // Log file used by the terminal form
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	c := &Config{Version: CurrentVersion}
	c.fillDefaults()
	return c
}

// fillDefaults ensures every section exists and zero values get defaults
func (c *Config) fillDefaults() {
	if c.Server == nil {
		c.Server = &ServerPrefs{}
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Discovery == nil {
		c.Discovery = &DiscoveryPrefs{}
	}
	if c.Discovery.Timeout <= 0 {
		c.Discovery.Timeout = DefaultScanTimeout
	}
	if c.Logging == nil {
		c.Logging = &LoggingPrefs{}
	}
}

// ScanTimeout returns the discovery timeout as a duration
func (c *Config) ScanTimeout() time.Duration {
	return time.Duration(c.Discovery.Timeout) * time.Second
}
