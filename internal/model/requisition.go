// internal/model/requisition.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RequisitionStatus is the persisted lifecycle state of a requisition. Only
// the workflow engine produces new values; repositories never accept
// arbitrary status writes.
type RequisitionStatus string

const (
	StatusDraft             RequisitionStatus = "draft"
	StatusPending           RequisitionStatus = "pending"
	StatusUnderReview       RequisitionStatus = "under_review"
	StatusReviewed          RequisitionStatus = "reviewed"
	StatusApproved          RequisitionStatus = "approved"
	StatusRejected          RequisitionStatus = "rejected"
	StatusCancelled         RequisitionStatus = "cancelled"
	StatusPartiallyReceived RequisitionStatus = "partially_received"
	StatusCompleted         RequisitionStatus = "completed"
)

// Terminal reports whether no further workflow events apply.
func (s RequisitionStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Requisition struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"organization_id"`
	ProjectID        uuid.UUID         `gorm:"type:uuid" json:"project_id"`
	ExpenseAccountID uuid.UUID         `gorm:"type:uuid" json:"expense_account_id"`
	SubmittedByID    uuid.UUID         `gorm:"type:uuid;not null" json:"submitted_by_id"`
	Title            string            `gorm:"type:text;not null" json:"title"`
	Description      string            `gorm:"type:text" json:"description"`
	Status           RequisitionStatus `gorm:"type:requisition_status;not null;default:'draft'" json:"status"`
	TotalCents       int64             `gorm:"not null;default:0" json:"total_cents"`

	SubmittedAt *time.Time `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ApprovedAt  *time.Time `json:"approved_at"`

	ReviewerID *uuid.UUID `gorm:"type:uuid" json:"reviewer_id"`
	ApproverID *uuid.UUID `gorm:"type:uuid" json:"approver_id"`
	ClosedByID *uuid.UUID `gorm:"type:uuid" json:"closed_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Organization Organization      `gorm:"foreignKey:OrganizationID" json:"-"`
	SubmittedBy  User              `gorm:"foreignKey:SubmittedByID" json:"-"`
	Items        []RequisitionItem `gorm:"foreignKey:RequisitionID" json:"items,omitempty"`
}

// SumItems recomputes the requisition total from its line items.
func (r *Requisition) SumItems() int64 {
	var total int64
	for _, item := range r.Items {
		total += item.TotalCents
	}
	return total
}

type RequisitionItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequisitionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"requisition_id"`
	CatalogItemID  uuid.UUID `gorm:"type:uuid;not null" json:"catalog_item_id"`
	Position       int       `gorm:"not null" json:"position"`
	Quantity       int64     `gorm:"not null" json:"quantity"`
	UnitPriceCents int64     `gorm:"not null" json:"unit_price_cents"`
	TotalCents     int64     `gorm:"not null" json:"total_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ComputeTotal derives the line total from quantity and unit price.
func (i *RequisitionItem) ComputeTotal() {
	i.TotalCents = i.Quantity * i.UnitPriceCents
}

type RequisitionComment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequisitionID uuid.UUID `gorm:"type:uuid;not null;index" json:"requisition_id"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	// Event names the workflow event this comment was recorded with, empty
	// for free-form discussion comments.
	Event     string    `gorm:"type:text" json:"event,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Attachment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequisitionID uuid.UUID `gorm:"type:uuid;not null;index" json:"requisition_id"`
	UploadedByID  uuid.UUID `gorm:"type:uuid;not null" json:"uploaded_by_id"`
	FileName      string    `gorm:"type:text;not null" json:"file_name"`
	ObjectKey     string    `gorm:"type:text;not null" json:"object_key"`
	URL           string    `gorm:"type:text;not null" json:"url"`
	SizeBytes     int64     `json:"size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}
