// Package handler is the HTTP layer behind the router.
//
// Handlers receive bound and validated requests through Handle and
// HandleNoContent, call the services, and return results or errors for the
// global error handler.
package handler
