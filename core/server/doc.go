// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines the
// listen port, the API key checked by the auth middleware and the read timeout.
package server
