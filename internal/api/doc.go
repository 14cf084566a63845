// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between the browser UI
// and the internal application services, translating HTTP concerns to
// credential and generation operations.
package api
