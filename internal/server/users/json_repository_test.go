package users

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/azarovs/forumd/internal/common"
	"github.com/azarovs/forumd/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUsersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewJSONRepository_LoadAndLookup(t *testing.T) {
	hash, err := cryptox.HashPassword([]byte("secret"))
	require.NoError(t, err)

	path := writeUsersFile(t, `{"alice": {"password": "`+hash+`"}}`)

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	u, err := repo.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, hash, u.PasswordHash)

	_, err = repo.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNewJSONRepository_MissingFile(t *testing.T) {
	_, err := NewJSONRepository(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestNewJSONRepository_MalformedFile(t *testing.T) {
	path := writeUsersFile(t, `{"alice": `)

	_, err := NewJSONRepository(path)
	assert.ErrorIs(t, err, common.ErrStorage)
}

func TestNewJSONRepository_RecordWithoutHash(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty hash", `{"alice": {"password": ""}}`},
		{"missing field", `{"alice": {}}`},
		{"null record", `{"alice": null}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeUsersFile(t, tc.content)
			_, err := NewJSONRepository(path)
			assert.ErrorIs(t, err, common.ErrStorage)
		})
	}
}

func TestNewJSONRepository_EmptyObject(t *testing.T) {
	path := writeUsersFile(t, `{}`)

	repo, err := NewJSONRepository(path)
	require.NoError(t, err)

	_, err = repo.Lookup(context.Background(), "anyone")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
