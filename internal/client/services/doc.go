// Package services holds the entity access facades over the clinic API.
//
// Every entity exposes the same five operations (List, Get, Create, Update,
// Remove) through Resource[T]; some add narrow list filters that become
// query parameters. Each operation performs exactly one gateway call and
// reports its outcome as a Result rather than an error: transport failures
// are converted at this boundary into a readable message (server message or
// a per-operation fallback) plus any field errors the server reported.
//
// Dashboard is the exception: it aggregates several calls and returns an
// error when any of them fails.
package services
