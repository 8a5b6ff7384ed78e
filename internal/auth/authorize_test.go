package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ansj1105/coin-csms-sub001/internal/domain"
)

func TestAuthorize(t *testing.T) {
	assert.True(t, Authorize(domain.RoleAdmin, domain.RoleAdmin, domain.RoleSuperAdmin))
	assert.True(t, Authorize(domain.RoleUser, domain.RoleUser))
	assert.False(t, Authorize(domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin))
	assert.False(t, Authorize(domain.RoleSuperAdmin, domain.RoleUser))
}

func TestAuthorize_EmptyAllowedDenies(t *testing.T) {
	assert.False(t, Authorize(domain.RoleSuperAdmin))
}
