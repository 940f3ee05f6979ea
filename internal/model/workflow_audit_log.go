package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// WorkflowAuditLog records every workflow transition attempt, allowed or
// denied, for compliance review.
type WorkflowAuditLog struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp      time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`
	RequisitionID  uuid.UUID `json:"requisition_id" gorm:"type:uuid;index"`
	ActorID        uuid.UUID `json:"actor_id" gorm:"type:uuid"`
	ActorRole      string    `json:"actor_role"`
	Event          string    `json:"event"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	Allowed        *bool     `json:"allowed"`
	Context        JSONMap   `json:"context" gorm:"type:jsonb"`
	RequestID      string    `json:"request_id"`
	ClientIP       string    `json:"client_ip"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for WorkflowAuditLog
func (WorkflowAuditLog) TableName() string {
	return "workflow_audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
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

	return json.Unmarshal(bytes, m)
}
