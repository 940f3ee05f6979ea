// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrAlreadyVerified    = errors.New("already verified")
	ErrInvalidCode        = errors.New("invalid verification code")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("organization member not found")
	ErrMemberAlreadyExists  = errors.New("user is already a member of this organization")
	ErrDuplicatePersonalOrg = errors.New("user can only have one personal organization")

	// Tenant scoping errors. ErrNoOrgContext is returned when a write cannot
	// resolve the caller's organization; inserts must fail, never default.
	ErrNoOrgContext = errors.New("no organization context resolved")

	// Requisition-related errors
	ErrRequisitionNotFound = errors.New("requisition not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrAccountNotFound     = errors.New("expense account not found")
	ErrItemNotFound        = errors.New("catalog item not found")
	ErrTemplateNotFound    = errors.New("template not found")

	// ErrStaleStatus signals that a conditional status update matched zero
	// rows: the requisition moved under the caller's feet.
	ErrStaleStatus = errors.New("requisition status changed concurrently")
)
