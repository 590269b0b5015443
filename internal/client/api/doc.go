// Package api is the console's gateway to the CastPro backend.
//
// It owns credential attachment, the error taxonomy, and the process-wide
// reaction to authentication failure. Nothing else in the console talks to
// the network.
package api
