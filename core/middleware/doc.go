// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the audit endpoints.
//   - rayid: assigns a Request ID (RayID) to every request, stored in the
//     context locals and echoed in the response headers for tracing.
//
// Both are registered globally by the start command.
package middleware
