// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package defines the
// listen port, the API key and the request body limit.
package server
