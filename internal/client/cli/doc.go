// Package cli is the interactive frontend of the CastPro admin console.
//
// The App type owns the wiring: one REST gateway, one durable session store
// backed by a local SQLite file, one registry per entity, the status
// workflow engine and the route guard. runREPL drives a plain line-oriented
// loop over that surface.
//
// Every protected command checks the guard before touching the network, and
// any 401 from the gateway clears the session and lands the user back on the
// login prompt, whichever command was running.
package cli
