package discovery

import (
	"fmt"
	"os"
	"strings"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/tipsplit/internal/logging"
)

// Advertisement is a running mDNS registration. Call Shutdown to withdraw it.
type Advertisement struct {
	Name   string
	Port   int
	server *zeroconf.Server
}

// TXTRecords returns the TXT records a tipsplit server publishes
func TXTRecords(version string) []string {
	return []string{
		TXTApp + "=" + AppName,
		TXTVersion + "=" + version,
		TXTPath + "=/",
	}
}

// DefaultInstanceName derives an instance name from the hostname
func DefaultInstanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return AppName
	}
	host = strings.TrimSuffix(host, ".local")
	return AppName + "-" + host
}

// Advertise registers a tipsplit server on the local network. An empty name
// uses DefaultInstanceName.
func Advertise(name string, port int, version string) (*Advertisement, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port for mDNS advertisement: %d", port)
	}
	if name == "" {
		name = DefaultInstanceName()
	}

	server, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, TXTRecords(version), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising via mDNS",
		zap.String("name", name),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return &Advertisement{Name: name, Port: port, server: server}, nil
}

// Shutdown withdraws the advertisement. Safe on a nil receiver.
func (a *Advertisement) Shutdown() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
	a.server = nil
	logging.Info("mDNS advertisement withdrawn", zap.String("name", a.Name))
}
