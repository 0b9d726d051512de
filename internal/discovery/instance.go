package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Instance is a tipsplit server found on the network
type Instance struct {
	// Name is the mDNS instance name (e.g., "kitchen-laptop")
	Name string

	// Hostname is the mDNS hostname (e.g., "kitchen-laptop.local.")
	Hostname string

	// IP is the address to connect to, IPv4 when one was advertised
	IP string

	// Port is the HTTP port of the browser form
	Port int

	// Metadata holds the TXT records, e.g. "app=tipsplit", "version=1.2.0"
	Metadata map[string]string

	// DiscoveredAt is when the instance was seen
	DiscoveredAt time.Time
}

// String returns a human-readable description of the instance
func (i *Instance) String() string {
	return fmt.Sprintf("%s (%s) at %s", i.Name, i.Hostname, net.JoinHostPort(i.IP, strconv.Itoa(i.Port)))
}

// URL returns the browser form URL for the instance
func (i *Instance) URL() string {
	path := i.GetMetadata(TXTPath)
	if path == "" {
		path = "/"
	}
	return "http://" + net.JoinHostPort(i.IP, strconv.Itoa(i.Port)) + path
}

// Version returns the advertised tipsplit version, or "unknown"
func (i *Instance) Version() string {
	if v := i.GetMetadata(TXTVersion); v != "" {
		return v
	}
	return "unknown"
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (i *Instance) GetMetadata(key string) string {
	if i.Metadata == nil {
		return ""
	}
	return i.Metadata[key]
}
