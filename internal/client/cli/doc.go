// Package cli provides the interactive vetclinic command-line client.
//
// It wires configuration, the local session database, the API gateway with
// its interceptors, the auth manager, the entity services and the client
// stores, then runs a REPL. A background watcher notices when the session
// expires and tells the user to log in again.
//
// Commands (after login):
//   - whoami, stats, today
//   - owners, owner <id>, pets [owner_id]
//   - appointments [date], cancel <id>
//   - vaccinations due|<pet_id>, records <pet_id>, services [active]
//   - report <kind>, logs
//   - notifications, clear, logout, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
