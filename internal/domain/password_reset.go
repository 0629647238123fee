package domain

import "time"

// PasswordReset is a pending one-time reset code. At most one row exists per
// email: issuing a new code replaces the previous one, and consuming or
// detecting expiry deletes the row. The code is kept in cleartext because it
// is short-lived and single-use; hashing it is the hardening step for a
// deployment with stricter storage requirements.
type PasswordReset struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	OTP       string    `db:"otp" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the code's validity window has passed.
func (p *PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
