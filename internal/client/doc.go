// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle: login flow, then the main loop, restarting on logout.
package client
