// Package auth gatekeeps mutating operations behind shared secrets.
package auth

import "crypto/subtle"

// Keys holds the two configured shared secrets. Admin and staff are
// independent credentials, not a hierarchy: callers decide which roles a
// route accepts.
type Keys struct {
	admin []byte
	staff []byte
}

func New(adminKey, staffKey string) *Keys {
	return &Keys{
		admin: []byte(adminKey),
		staff: []byte(staffKey),
	}
}

// IsAdmin reports whether the supplied key matches the admin secret.
// Comparison is constant-time; empty input is always rejected.
func (k *Keys) IsAdmin(key string) bool {
	return match(k.admin, key)
}

// IsStaff reports whether the supplied key matches the staff secret.
func (k *Keys) IsStaff(key string) bool {
	return match(k.staff, key)
}

func match(secret []byte, key string) bool {
	if len(key) == 0 || len(secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(secret, []byte(key)) == 1
}
