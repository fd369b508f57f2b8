package session

import (
	"math"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/roles"
)

// Identity is who the session belongs to.
type Identity struct {
	Username string     `json:"username"`
	Role     roles.Role `json:"role"`
}

// Record is the server-side session state stored in Redis. CreatedAt is
// fractional epoch seconds, written once at creation and never updated;
// the sliding expiry lives entirely in the store's TTL.
type Record struct {
	Identity  Identity                `json:"identity"`
	CreatedAt float64                 `json:"created_at"`
	Client    fingerprint.Fingerprint `json:"client"`
}

// IssuedAt converts the stored epoch seconds back to a time.Time.
func (r Record) IssuedAt() time.Time {
	sec, frac := math.Modf(r.CreatedAt)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// Health is a read-only expiry snapshot of a live session.
//
// MaxAgeAt derives from the record's creation time, NextExpiryAt from the
// store's remaining TTL. The two are computed independently; NextExpiryAt
// may exceed MaxAgeAt near end of life, and readers take the earlier one.
type Health struct {
	IssuedAt     time.Time `json:"issued_at"`
	MaxAgeAt     time.Time `json:"max_age_at"`
	NextExpiryAt time.Time `json:"next_expiry_at"`
}
