// Package config manages the tipsplit preferences file.
//
// Preferences are stored as YAML and only hold how the program runs (server
// address, mDNS advertisement, scan timeout). Calculations are never written
// to disk.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/tipsplit/config.yaml or $HOME/.config/tipsplit/config.yaml
//   - macOS: $HOME/.config/tipsplit/config.yaml
//   - Windows: %LOCALAPPDATA%\tipsplit\config.yaml
//
// A missing file is not an error: Load returns the defaults.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Server.Port = 9090
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for initialization. Writes go through a
// temporary file and a rename under a mutex.
package config
