// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Context        JSONMap   `gorm:"type:jsonb" json:"context"`
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time `json:"created_at"`
}
