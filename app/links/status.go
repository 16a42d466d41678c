package links

import "time"

// Status is the last observed reachability of a link.
type Status struct {
	ID         int       `json:"id"`
	URL        string    `json:"url"`
	Checked    bool      `json:"checked"`
	Healthy    bool      `json:"healthy"`
	StatusCode int       `json:"status_code,omitempty"`
	CheckedAt  time.Time `json:"checked_at,omitzero"`
}
