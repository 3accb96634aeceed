package catalog

import "github.com/muurk/btautolaunch/internal/automation"

// DeviceProvider lists the Bluetooth devices the rule can target
type DeviceProvider interface {
	Devices() []Device
}

// PlayerProvider lists the media players the rule can launch
type PlayerProvider interface {
	Players() []Player
}

// VendorProvider looks up background-restriction advice by manufacturer
type VendorProvider interface {
	Vendor(manufacturer string) (VendorInfo, bool)
	Vendors() []VendorInfo
}

// EventLog returns the audit trail in chronological order
type EventLog interface {
	Entries() []LogEntry
}

// StatusProbe reports the current connection status of the engine
type StatusProbe interface {
	Status() automation.ConnectionStatus
}

// Providers bundles every data source a screen may consume
type Providers struct {
	Devices DeviceProvider
	Players PlayerProvider
	Vendors VendorProvider
	Log     EventLog
	Status  StatusProbe
}

// StaticProviders returns the built-in mock tables
func StaticProviders() Providers {
	return Providers{
		Devices: StaticDevices(),
		Players: StaticPlayers(),
		Vendors: StaticVendors(),
		Log:     StaticLog(),
		Status:  FixedStatus(automation.StatusReady),
	}
}

// FixedStatus is a StatusProbe that always reports the same status
type FixedStatus automation.ConnectionStatus

// Status implements StatusProbe
func (f FixedStatus) Status() automation.ConnectionStatus {
	return automation.ConnectionStatus(f)
}
