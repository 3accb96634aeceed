// Package config provides user configuration management for btautolaunch.
//
// This package manages a YAML-based configuration file that stores viewer
// preferences (start tab, theme order, frame size, server and logging
// settings) and the preview servers remembered from mDNS discovery. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/btautolaunch/config.yaml or $HOME/.config/btautolaunch/config.yaml
//   - macOS: $HOME/.config/btautolaunch/config.yaml
//   - Windows: %LOCALAPPDATA%\btautolaunch\config.yaml
//
// The automation rule edited in the preview is never written to disk.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//
//	tab, err := registry.Preferences.Tab()
//	if err != nil {
//	    return err
//	}
//
//	registry.RememberPeer("studio-mac", "192.168.1.20:8765", "1.0.0")
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// LoadRegistry loads the file once per process. Saves are serialized and
// atomic (write to a temporary file, then rename).
package config
