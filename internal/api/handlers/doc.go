// Package handlers implements HTTP handlers for the bookmint API.
package handlers

import "github.com/danielgtaylor/huma/v2"

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Identity carries the authenticated user id. The edge proxy terminates
// authentication and forwards the resolved identity in X-User-ID; this
// service trusts the header as-is.
type Identity struct {
	UserID string `header:"X-User-ID" doc:"Authenticated user id"`
}

// requireUser returns the user id or a 401 when the header is absent.
func (i *Identity) requireUser() (string, error) {
	if i.UserID == "" {
		return "", huma.Error401Unauthorized("missing X-User-ID header")
	}
	return i.UserID, nil
}
