// Package client talks to the status routes of a running tipsplit server.
//
// The scan command uses it to confirm that each server found over mDNS is
// reachable and to show which version it runs. Requests are retried with
// exponential backoff for timeouts, network failures and 5xx responses.
// Connection refused, 4xx and malformed bodies fail immediately.
//
//	c := client.New(inst.URL())
//	info, err := c.Version(ctx)
//	fmt.Println(client.ShortMessage(err))
package client
