package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role(0).Valid())
	assert.False(t, Role(99).Valid())
}

func TestRole_StringRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperAdmin} {
		parsed, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRole("root")
	assert.Error(t, err)
}

func TestRole_JSON(t *testing.T) {
	data, err := json.Marshal(RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, `"admin"`, string(data))

	var r Role
	require.NoError(t, json.Unmarshal([]byte(`"superadmin"`), &r))
	assert.Equal(t, RoleSuperAdmin, r)

	assert.Error(t, json.Unmarshal([]byte(`"root"`), &r))

	_, err = json.Marshal(Role(42))
	assert.Error(t, err)
}
