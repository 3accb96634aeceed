package catalog

// Device is a paired Bluetooth device
type Device struct {
	ID   string `json:"id"` // Bluetooth MAC address
	Name string `json:"name"`
}

// Player is an installed media player application
type Player struct {
	Package string `json:"package"` // Android package name
	Name    string `json:"name"`
}

var pairedDevices = []Device{
	{ID: "4C:32:75:A1:B2:C3", Name: "Audi MMI 3291"},
	{ID: "88:44:00:FF:EE:DD", Name: "BMW 520i"},
	{ID: "00:11:22:33:44:55", Name: "Sony WH-1000XM4"},
}

var mediaPlayers = []Player{
	{Package: "com.spotify.music", Name: "Spotify"},
	{Package: "com.google.android.apps.youtube.music", Name: "YouTube Music"},
	{Package: "com.apple.android.music", Name: "Apple Music"},
	{Package: "org.videolan.vlc", Name: "VLC"},
}

// DeviceList is a DeviceProvider backed by a fixed slice
type DeviceList []Device

// Devices implements DeviceProvider
func (l DeviceList) Devices() []Device {
	return append([]Device(nil), l...)
}

// PlayerList is a PlayerProvider backed by a fixed slice
type PlayerList []Player

// Players implements PlayerProvider
func (l PlayerList) Players() []Player {
	return append([]Player(nil), l...)
}

// StaticDevices returns the mock paired-device table
func StaticDevices() DeviceList {
	return DeviceList(pairedDevices)
}

// StaticPlayers returns the mock media-player table
func StaticPlayers() PlayerList {
	return PlayerList(mediaPlayers)
}

// FindDevice returns the device with the given ID
func FindDevice(p DeviceProvider, id string) (Device, bool) {
	for _, d := range p.Devices() {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// FindPlayer returns the player with the given package name
func FindPlayer(p PlayerProvider, pkg string) (Player, bool) {
	for _, pl := range p.Players() {
		if pl.Package == pkg {
			return pl, true
		}
	}
	return Player{}, false
}
