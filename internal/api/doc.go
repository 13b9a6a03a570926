// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between HTTP clients and the cloze service,
// translating model failures into status codes and safe error messages.
package api
