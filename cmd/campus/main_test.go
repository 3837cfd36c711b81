package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/campus/internal/auth"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "admin@ucsb.edu", "--roles", "admin,user")
	require.NoError(t, err)

	p, err := auth.ParseToken("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "admin@ucsb.edu", p.Subject)
	assert.Equal(t, []auth.Role{auth.RoleAdmin, auth.RoleUser}, p.Roles)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := execute(t, "token", "--subject", "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "cli-secret")
	_, err = execute(t, "token", "--subject", "x", "--roles", "ROOT")
	assert.ErrorContains(t, err, "unknown role")

	_, err = execute(t, "token")
	assert.Error(t, err, "subject is required")
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "campus.db"))

	out, err := execute(t, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "schema version 5\n", out)

	out, err = execute(t, "migrate", "--rollback-to", "2")
	require.NoError(t, err)
	assert.Equal(t, "schema version 2\n", out)
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, loadEnvFile(""))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CAMPUS_TEST_VALUE=from-file\n"), 0600))
	t.Setenv("CAMPUS_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CAMPUS_TEST_VALUE"))

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("CAMPUS_TEST_VALUE"))
}

func TestParseRoles(t *testing.T) {
	roles, err := parseRoles([]string{" user ", "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, []auth.Role{auth.RoleUser, auth.RoleAdmin}, roles)

	_, err = parseRoles([]string{"guest"})
	assert.Error(t, err)
}
