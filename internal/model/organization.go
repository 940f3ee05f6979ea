// internal/model/organization.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrganizationType string

const (
	OrgTypeEnterprise OrganizationType = "enterprise"
	OrgTypePersonal   OrganizationType = "personal"
	OrgTypeTeam       OrganizationType = "team"
)

type Organization struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string           `gorm:"type:text;not null" json:"name"`
	OrgType     OrganizationType `gorm:"type:organization_type;not null;default:personal" json:"org_type"`
	CreatedByID uuid.UUID        `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	CreatedBy User                 `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []OrganizationMember `gorm:"foreignKey:OrganizationID" json:"-"`
}

// Role is the closed set of per-organization roles. Role strings coming from
// the database or request payloads pass through ParseRole before they reach
// guard logic.
type Role string

const (
	RoleSubmitter    Role = "submitter"
	RoleReviewer     Role = "reviewer"
	RoleApprover     Role = "approver"
	RoleStoreManager Role = "store_manager"
	RoleSuperAdmin   Role = "super_admin"
)

// ParseRole maps a raw role string onto the closed Role enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSubmitter, RoleReviewer, RoleApprover, RoleStoreManager, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Scan implements the sql.Scanner interface
func (r *Role) Scan(value interface{}) error {
	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, r)
	}

	parsed, err := ParseRole(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) {
	if _, err := ParseRole(string(r)); err != nil {
		return nil, err
	}
	return string(r), nil
}

// OrganizationMember links a user to an organization with a role. Roles are
// scoped per organization, never global.
type OrganizationMember struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_member" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_member" json:"user_id"`
	Role           Role      `gorm:"type:org_role;not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"-"`
}
