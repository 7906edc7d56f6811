// Package stores holds observable client state: a generic Writable value,
// the notification registry and the auth store that mirrors the session
// manager for the UI layer.
package stores
