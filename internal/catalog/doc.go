// Package catalog provides the reference data shown by the preview: paired
// Bluetooth devices, installed media players, the per-manufacturer vendor
// restriction database and the audit trail of the (mocked) background
// service.
//
// Every table is exposed through a small provider interface so that a real
// device scan, a real package query or a real event log can replace the
// static tables without touching the screens that consume them.
//
//	var devices catalog.DeviceProvider = catalog.StaticDevices()
//	for _, d := range devices.Devices() {
//	    fmt.Println(d.Name, d.ID)
//	}
package catalog
