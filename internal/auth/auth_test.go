package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys_IsAdmin(t *testing.T) {
	keys := New("admin-secret", "staff-secret")

	assert.True(t, keys.IsAdmin("admin-secret"))
	assert.False(t, keys.IsAdmin("staff-secret"))
	assert.False(t, keys.IsAdmin("wrong"))
	assert.False(t, keys.IsAdmin(""))
}

func TestKeys_IsStaff(t *testing.T) {
	keys := New("admin-secret", "staff-secret")

	assert.True(t, keys.IsStaff("staff-secret"))
	assert.False(t, keys.IsStaff("admin-secret"))
	assert.False(t, keys.IsStaff("wrong"))
	assert.False(t, keys.IsStaff(""))
}

func TestKeys_NoHierarchy(t *testing.T) {
	keys := New("admin-secret", "staff-secret")

	// Admin and staff are independent credentials.
	assert.False(t, keys.IsStaff("admin-secret"))
	assert.False(t, keys.IsAdmin("staff-secret"))
}

func TestKeys_EmptySecretNeverMatches(t *testing.T) {
	keys := New("", "")

	assert.False(t, keys.IsAdmin(""))
	assert.False(t, keys.IsStaff(""))
	assert.False(t, keys.IsAdmin("anything"))
}
