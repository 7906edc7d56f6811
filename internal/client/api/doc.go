// Package api is the HTTP gateway to the clinic backend.
//
// A Gateway owns the base address (server origin plus the /api prefix), the
// default JSON headers and two ordered interceptor pipelines:
//
//   - request interceptors run before dispatch and may mutate the request
//     (bearer token, request id) or abort it by returning an error;
//   - response interceptors see every completed call, successful or not,
//     and return the error the caller will observe.
//
// Non-2xx responses and network failures surface as *TransportError. Match
// the common cases with errors.Is(err, ErrUnauthorized) and
// errors.Is(err, ErrValidation).
//
// The gateway adds no retry or timeout policy; deadlines come from the
// caller's context.
package api
