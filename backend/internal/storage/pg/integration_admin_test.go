package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskominfo-bogor/sipmang/shared/domain"
	internal_errors "github.com/diskominfo-bogor/sipmang/shared/errors"
)

func TestAdminSaveAndLookup(t *testing.T) {
	truncateAll(t)

	admin := domain.Admin{Username: "admin", Email: "admin@diskominfo.bogorkab.go.id", PassHash: "$2a$10$fakehash"}
	id, err := storage.SaveAdmin(admin)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := storage.AdminByEmail(admin.Email)
	require.NoError(t, err)
	assert.Equal(t, id, got.Id)
	assert.Equal(t, admin.Username, got.Username)
	assert.Equal(t, admin.PassHash, got.PassHash)
}

func TestAdminByEmail_NotFound(t *testing.T) {
	truncateAll(t)

	_, err := storage.AdminByEmail("nobody@diskominfo.bogorkab.go.id")

	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestAdminByEmail_ExactMatchOnly(t *testing.T) {
	truncateAll(t)

	_, err := storage.SaveAdmin(domain.Admin{Username: "admin", Email: "admin@diskominfo.bogorkab.go.id", PassHash: "h"})
	require.NoError(t, err)

	// Lookup is exact, not case-folded.
	_, err = storage.AdminByEmail("Admin@diskominfo.bogorkab.go.id")
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUpdateAdmin(t *testing.T) {
	truncateAll(t)

	_, err := storage.SaveAdmin(domain.Admin{Username: "", Email: "operator@diskominfo.bogorkab.go.id", PassHash: "old"})
	require.NoError(t, err)

	err = storage.UpdateAdmin(domain.Admin{Username: "operator", Email: "operator@diskominfo.bogorkab.go.id", PassHash: "new"})
	require.NoError(t, err)

	got, err := storage.AdminByEmail("operator@diskominfo.bogorkab.go.id")
	require.NoError(t, err)
	assert.Equal(t, "operator", got.Username)
	assert.Equal(t, "new", got.PassHash)
}

func TestUpdateAdmin_NotFound(t *testing.T) {
	truncateAll(t)

	err := storage.UpdateAdmin(domain.Admin{Username: "x", Email: "ghost@diskominfo.bogorkab.go.id", PassHash: "h"})

	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestSaveAdmin_DuplicateEmail(t *testing.T) {
	truncateAll(t)

	admin := domain.Admin{Username: "admin", Email: "admin@diskominfo.bogorkab.go.id", PassHash: "h"}
	_, err := storage.SaveAdmin(admin)
	require.NoError(t, err)

	_, err = storage.SaveAdmin(admin)
	assert.Error(t, err, "email uniqueness is enforced by the schema")
}
