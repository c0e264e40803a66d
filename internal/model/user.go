// Package model defines domain entities for the application.
package model

import "time"

// User represents an account that owns financial entries.
//
// Password is stored and compared verbatim (no hashing) to keep outward
// behavior compatible with the legacy system. Known weakness, documented
// in the README.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
