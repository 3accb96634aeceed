// Package server exposes a running preview over HTTP and websocket.
//
// The server owns one automation.State behind a Store. Every action posted
// to the API is reduced exactly like a key press in the terminal preview,
// and each resulting state is pushed to websocket subscribers.
//
// # Endpoints
//
//	GET  /api/state      current state as JSON
//	POST /api/actions    reduce one action, returns the new state
//	GET  /api/catalog    paired devices, media players and vendor advice
//	GET  /api/version    build version
//	GET  /preview        rendered frame as plain text (?theme=light|dark)
//	GET  /ws             state snapshots, one JSON message per reduction
//
// Actions use the automation wire envelope:
//
//	{"type":"select_tab","tab":"audit"}
//	{"type":"select_tier","tier":"High"}
//	{"type":"update_config","config":{"deviceId":"88:44:00:FF:EE:DD"}}
//
// A rejected action gets status 400 and a body of the form
// {"error":"...","field":"..."}; the state is left untouched.
//
// # Subscribers
//
// Each websocket client gets a buffered channel. A client that falls more
// than a few snapshots behind misses intermediate states but always
// receives later ones; the reducer never blocks on a slow reader.
//
// # Shutdown
//
// Start returns after SIGINT, SIGTERM or context cancellation. Open
// websocket connections are closed and the mDNS advertisement, if any,
// is withdrawn.
package server
