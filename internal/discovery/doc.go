// Package discovery advertises preview servers over mDNS and finds them.
//
// A server started with "btautolaunch serve --advertise" registers the
// "_btautolaunch._tcp" service in the "local." domain. Its TXT records
// carry the build version and the tab names:
//
//	version=v0.3.0
//	tabs=dashboard,setup,audit
//
// "btautolaunch discover" browses for the same service type and prints
// every peer that answered before the timeout.
//
// # Usage Example
//
//	scanner := discovery.NewScanner()
//	peers, err := scanner.ScanForPreviews(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, p := range peers {
//	    fmt.Println(p.Instance, p.BaseURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Peers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
