// Package testutils provides helpers for tests that drive the HTTP API
// through a real httptest.Server.
package testutils
