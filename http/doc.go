// Package http provides the REST API for the portfolio content service.
//
// # Endpoints
//
// All application routes live under /api:
//
//   - GET  /api/health           liveness probe
//   - POST /api/auth/login       exchange admin credentials for a token
//   - GET  /api/auth/validate    check a bearer token (bearer)
//   - GET  /api/photography      the gallery document, default on any failure
//   - PUT  /api/photography      full-document replace (bearer)
//   - POST /api/upload           multipart image upload (bearer)
//
// When the local disk backend is active, uploaded images are additionally
// served read-only under /uploads/.
//
// # Error handling
//
// Every error response is JSON ({error, message}); HandleError maps the
// domain sentinel errors onto status codes and chi's Recoverer middleware
// turns handler panics into 500s, so a response is always sent.
//
// # Authentication
//
// Mutating routes use BearerAuth, which delegates to a TokenVerifier. The
// concrete verifier is the auth package's stateless signed-token service.
package http
