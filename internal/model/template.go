// internal/model/template.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// TemplateItem is one line of a requisition template, stored as JSONB.
type TemplateItem struct {
	CatalogItemID  uuid.UUID `json:"catalog_item_id"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type TemplateItems []TemplateItem

// Value implements the driver.Valuer interface for TemplateItems
func (t TemplateItems) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface for TemplateItems
func (t *TemplateItems) Scan(value interface{}) error {
	if value == nil {
		*t = TemplateItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, t)
}

// RequisitionTemplate is a reusable set of requisition defaults and line
// items owned by an organization.
type RequisitionTemplate struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"organization_id"`
	CreatedByID      uuid.UUID     `gorm:"type:uuid;not null" json:"created_by_id"`
	Name             string        `gorm:"type:text;not null" json:"name"`
	Title            string        `gorm:"type:text" json:"title"`
	Description      string        `gorm:"type:text" json:"description"`
	ProjectID        uuid.UUID     `gorm:"type:uuid" json:"project_id"`
	ExpenseAccountID uuid.UUID     `gorm:"type:uuid" json:"expense_account_id"`
	Items            TemplateItems `gorm:"type:jsonb" json:"items"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
