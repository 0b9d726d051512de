// Package server serves the tip calculator form to web browsers.
//
// The page at "/" is a static HTML form rendered from an embedded template.
// Its script opens a WebSocket to "/ws" and sends one JSON event per user
// action:
//
//	{"type":"bill","value":"142.55"}
//	{"type":"custom_tip","value":"22"}
//	{"type":"people","value":"5"}
//	{"type":"preset","percent":15}
//	{"type":"reset"}
//
// Every WebSocket connection is a session with its own form.State. The server
// applies each event with form.State.Apply and replies with the complete
// form.View, including the field text the form kept. The browser writes that
// text back into its inputs, which is how rejected keystrokes disappear.
// Events the form does not understand leave the state unchanged and add an
// "error" field to the reply.
//
// # Other Routes
//
//   - GET /healthz returns "ok"
//   - GET /version returns the build version as JSON
//   - GET /metrics exposes Prometheus collectors (events, rejected inputs,
//     active sessions, resets)
//
// # Usage Example
//
//	srv, err := server.New(&server.Config{Port: 8080, Advertise: true})
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives. Shutdown stops
// the mDNS advertisement, closes live sessions with a going-away close frame
// and waits for their goroutines.
package server
