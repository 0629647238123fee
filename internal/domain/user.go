package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountRole is the application-level role attached to a login account.
// It is distinct from Role, which is an employee's job title.
type AccountRole string

const (
	AccountRoleAdmin    AccountRole = "ADMIN"
	AccountRoleHR       AccountRole = "HR"
	AccountRoleEmployee AccountRole = "EMPLOYEE"
)

// MaxHRAccounts caps how many accounts may hold the HR role at creation
// time. The cap is system-wide and enforced atomically in the user store.
const MaxHRAccounts = 5

// Capability names a class of operations a role may perform. Authorization
// decisions go through the role→capability table below so the policy lives
// in one place instead of role string checks at call sites.
type Capability string

const (
	CapabilityViewRecords   Capability = "records:view"
	CapabilityManageRecords Capability = "records:manage"
	CapabilityDeleteRecords Capability = "records:delete"
)

var roleCapabilities = map[AccountRole]map[Capability]bool{
	AccountRoleAdmin: {
		CapabilityViewRecords:   true,
		CapabilityManageRecords: true,
		CapabilityDeleteRecords: true,
	},
	AccountRoleHR: {
		CapabilityViewRecords:   true,
		CapabilityManageRecords: true,
	},
	AccountRoleEmployee: {
		CapabilityViewRecords: true,
	},
}

// Can reports whether the role grants the capability.
func (r AccountRole) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// ParseAccountRole normalizes a caller-supplied role string. An empty value
// defaults to EMPLOYEE, matching account self-registration.
func ParseAccountRole(raw string) (AccountRole, error) {
	switch AccountRole(strings.ToUpper(strings.TrimSpace(raw))) {
	case "":
		return AccountRoleEmployee, nil
	case AccountRoleAdmin:
		return AccountRoleAdmin, nil
	case AccountRoleHR:
		return AccountRoleHR, nil
	case AccountRoleEmployee:
		return AccountRoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

type User struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	Email        string      `db:"email" json:"email"`
	Name         string      `db:"name" json:"name"`
	PasswordHash []byte      `db:"password_hash" json:"-"`
	Role         AccountRole `db:"role" json:"role"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

// HasPassword reports whether the account can authenticate with a password.
// Google-provisioned accounts have none until a reset sets one.
func (u *User) HasPassword() bool {
	return len(u.PasswordHash) > 0
}
