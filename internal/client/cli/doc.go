// Package cli provides the interactive YouQuote console.
//
// It wires configuration, the persisted session, the API client and the
// services, then runs a REPL whose commands are gated by the caller's
// capabilities. Navigation commands are checked against the gate here;
// moderation commands are checked again by the moderation service.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
