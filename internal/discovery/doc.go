// Package discovery finds and announces tipsplit servers on the local network
// using multicast DNS.
//
// A server started with advertising enabled registers an "_http._tcp"
// service carrying these TXT records:
//
//	app=tipsplit
//	version=<build version>
//	path=/
//
// Scanner browses the same service type and keeps only entries whose app
// record is "tipsplit", so other HTTP services on the LAN are ignored.
//
// # Usage Example
//
//	ad, err := discovery.Advertise("", 8080, version.Version)
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
//	instances, err := discovery.Scan(ctx, 5*time.Second)
//	for _, inst := range instances {
//	    fmt.Println(inst.Name, inst.URL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
