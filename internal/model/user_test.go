package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserStatusConstants(t *testing.T) {
	// Users and requisitions both have a pending state. The constants
	// carry distinct types so the two lifecycles never mix.
	assert.Equal(t, UserStatus("pending"), UserStatusPending)
	assert.Equal(t, RequisitionStatus("pending"), StatusPending)

	assert.Equal(t, UserStatus("active"), UserStatusActive)
	assert.Equal(t, UserStatus("locked"), UserStatusLocked)
	assert.Equal(t, UserStatus("suspended"), UserStatusSuspended)
}
