// Package http implements the REST API of the taskflow server.
//
// It wires chi routes to the service layer. Request tracing, access logging,
// response compression and session-cookie authentication are handled here
// before a request reaches a handler. Error responses are plain-text bodies
// written with [http.Error]; the client shows them to the user verbatim.
package http
