package models

import "time"

// Result is the outcome of a single rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, set when not allowed
}

// ExceededResponse is the API response when a caller is throttled.
type ExceededResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"` // seconds
}
