package domain

import "time"

// Owner identifies a user that may hold accounts. Only the existence
// check is consumed here; identity management lives elsewhere.
type Owner struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
