// ABOUTME: Shared API response envelopes
// ABOUTME: Error payload returned by all handlers on failure

package models

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
